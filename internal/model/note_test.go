package model

import (
	"errors"
	"testing"
)

func TestNormalize_TrimsBothFields(t *testing.T) {
	title, content := Normalize("  Title  ", "\tContent \n")

	if title != "Title" {
		t.Errorf("Expected trimmed title %q, got %q", "Title", title)
	}

	if content != "Content" {
		t.Errorf("Expected trimmed content %q, got %q", "Content", content)
	}
}

func TestNormalize_EmptyContent(t *testing.T) {
	title, content := Normalize("Title", "")

	if title != "Title" {
		t.Errorf("Expected title %q, got %q", "Title", title)
	}

	if content != "" {
		t.Errorf("Expected empty content, got %q", content)
	}
}

func TestValidateTitle_Valid(t *testing.T) {
	if err := ValidateTitle("Title"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateTitle_Empty(t *testing.T) {
	err := ValidateTitle("")

	if err == nil {
		t.Fatal("Expected error for empty title")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got: %T", err)
	}

	if validationErr.Field != "title" {
		t.Errorf("Expected field %q, got %q", "title", validationErr.Field)
	}
}

func TestValidateTitle_WhitespaceOnly(t *testing.T) {
	err := ValidateTitle("   \t\n")

	if err == nil {
		t.Fatal("Expected error for whitespace-only title")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got: %T", err)
	}
}

func TestNote_Validate(t *testing.T) {
	note := Note{Title: "Title"}
	if err := note.Validate(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	empty := Note{Title: "  "}
	if err := empty.Validate(); err == nil {
		t.Error("Expected error for whitespace-only title")
	}
}

func TestNote_IsEmpty(t *testing.T) {
	var zero Note
	if !zero.IsEmpty() {
		t.Error("Expected zero note to be empty")
	}

	withID := Note{ID: "id"}
	if withID.IsEmpty() {
		t.Error("Expected note with ID to not be empty")
	}
}
