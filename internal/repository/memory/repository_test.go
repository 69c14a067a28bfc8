package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/internal/model"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	note, err := repo.Create(ctx, model.Note{Title: "Title", Content: "Content"})
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID, "Expected repository to assign an ID")
	assert.Equal(t, "Title", note.Title)
	assert.Equal(t, "Content", note.Content)
	assert.False(t, note.CreatedAt.IsZero(), "Expected CreatedAt to be set")
	assert.True(t, note.CreatedAt.Equal(note.UpdatedAt), "Expected CreatedAt == UpdatedAt on create")
	assert.Equal(t, time.UTC, note.CreatedAt.Location(), "Expected UTC timestamps")
}

func TestRepository_Create_IgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	// ID и временные метки назначает хранилище, а не вызывающий
	note, err := repo.Create(ctx, model.Note{ID: "caller-id", Title: "Title"})
	require.NoError(t, err)
	assert.NotEqual(t, "caller-id", note.ID)
}

func TestRepository_Create_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		note, err := repo.Create(ctx, model.Note{Title: "Title"})
		require.NoError(t, err)
		assert.False(t, seen[note.ID], "Expected unique ID, got duplicate %s", note.ID)
		seen[note.ID] = true
	}
}

func TestRepository_Create_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			note, err := repo.Create(ctx, model.Note{Title: "Title"})
			assert.NoError(t, err)
			ids <- note.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "Expected unique ID, got duplicate %s", id)
		seen[id] = true
	}
	require.Len(t, seen, n)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, n)
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, model.Note{Title: "Title", Content: "Content"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got, "Expected round-trip equality")
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetByID(ctx, "non-existent-id")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, model.Note{Title: "Original", Content: "Original"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(ctx, model.Note{ID: created.ID, Title: "Updated", Content: "New"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "Expected ID to be unchanged")
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, "New", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "Expected CreatedAt to be unchanged")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "Expected UpdatedAt to increase")
}

func TestRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Update(ctx, model.Note{ID: "non-existent-id", Title: "Title"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, model.Note{Title: "Title"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted, "Expected true for existing note")

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound, "Expected note to be gone after delete")
}

func TestRepository_Delete_Absent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, model.Note{Title: "Title"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "non-existent-id")
	require.NoError(t, err, "Expected absent id to not be an error")
	assert.False(t, deleted, "Expected false for absent note")

	// Коллекция не изменилась
	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)
}

func TestRepository_List_Snapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, model.Note{Title: "Original"})
	require.NoError(t, err)

	snapshot, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Мутация хранилища после list не должна менять уже возвращенный снапшот
	_, err = repo.Update(ctx, model.Note{ID: created.ID, Title: "Changed"})
	require.NoError(t, err)

	assert.Equal(t, "Original", snapshot[0].Title, "Expected snapshot to be unaffected by later mutations")
}
