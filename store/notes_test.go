package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStore_CreateAndList(t *testing.T) {
	conn := testDB(t)
	users := NewUserStore(conn)
	notes := NewNoteStore(conn)
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "secret2")
	require.NoError(t, err)

	first, err := notes.Create(ctx, alice, "first", "alpha")
	require.NoError(t, err)
	second, err := notes.Create(ctx, alice, "second", "beta")
	require.NoError(t, err)
	_, err = notes.Create(ctx, bob, "", "bob's note")
	require.NoError(t, err)

	t.Run("Only the owner's notes, newest update first", func(t *testing.T) {
		got, err := notes.List(ctx, alice, 1, 20)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second, got[0].ID)
		assert.Equal(t, first, got[1].ID)
	})

	t.Run("Updating bumps a note to the front", func(t *testing.T) {
		require.NoError(t, notes.Update(ctx, alice, first, nil, strPtr("alpha v2")))

		got, err := notes.List(ctx, alice, 1, 20)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].ID)
		assert.Equal(t, "alpha v2", got[0].Content)
		assert.Equal(t, "first", got[0].Title, "untouched field preserved")
		assert.True(t, got[0].UpdatedAt.After(got[0].CreatedAt))
	})

	t.Run("Pagination slices the ordered list", func(t *testing.T) {
		carol, err := users.Register(ctx, "carol", "secret3")
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			_, err := notes.Create(ctx, carol, "", fmt.Sprintf("note %d", i))
			require.NoError(t, err)
		}

		pageOne, err := notes.List(ctx, carol, 1, 2)
		require.NoError(t, err)
		pageTwo, err := notes.List(ctx, carol, 2, 2)
		require.NoError(t, err)
		pageThree, err := notes.List(ctx, carol, 3, 2)
		require.NoError(t, err)

		assert.Len(t, pageOne, 2)
		assert.Len(t, pageTwo, 2)
		assert.Len(t, pageThree, 1)
		assert.NotEqual(t, pageOne[0].ID, pageTwo[0].ID)
	})

	t.Run("Empty result is an empty slice", func(t *testing.T) {
		dave, err := users.Register(ctx, "dave", "secret4")
		require.NoError(t, err)

		got, err := notes.List(ctx, dave, 1, 20)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNoteStore_OwnerFusion(t *testing.T) {
	conn := testDB(t)
	users := NewUserStore(conn)
	notes := NewNoteStore(conn)
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "secret2")
	require.NoError(t, err)

	noteID, err := notes.Create(ctx, alice, "private", "alice only")
	require.NoError(t, err)

	t.Run("Foreign note reads as missing on update", func(t *testing.T) {
		err := notes.Update(ctx, bob, noteID, strPtr("stolen"), nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Foreign note reads as missing on delete", func(t *testing.T) {
		err := notes.Delete(ctx, bob, noteID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Nonexistent id is the same error", func(t *testing.T) {
		err := notes.Update(ctx, alice, uuid.NewString(), strPtr("x"), nil)
		assert.ErrorIs(t, err, ErrNotFound)

		err = notes.Delete(ctx, alice, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Owner still sees the note untouched", func(t *testing.T) {
		got, err := notes.List(ctx, alice, 1, 20)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "alice only", got[0].Content)
	})

	t.Run("Owner can delete", func(t *testing.T) {
		require.NoError(t, notes.Delete(ctx, alice, noteID))

		got, err := notes.List(ctx, alice, 1, 20)
		require.NoError(t, err)
		assert.Empty(t, got)

		assert.ErrorIs(t, notes.Delete(ctx, alice, noteID), ErrNotFound)
	})
}

func strPtr(s string) *string { return &s }
