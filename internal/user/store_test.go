package user_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hbomb79/Booru/internal/database/dbtest"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_DefaultsAndIdempotence(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	store := &user.Store{}

	first, err := store.GetOrCreate(ctx, db, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Unnamed User %d", first.ID), first.Name)
	assert.Equal(t, user.DefaultBio, first.Bio)

	again, err := store.GetOrCreate(ctx, db, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	other, err := store.GetOrCreate(ctx, db, "cafebabe")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	_, err = store.GetOrCreate(ctx, db, "")
	assert.Error(t, err)
}

func TestUpdateNameAndBio(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	store := &user.Store{}

	u, err := store.GetOrCreate(ctx, db, "deadbeef")
	require.NoError(t, err)

	require.NoError(t, store.UpdateName(ctx, db, u.ID, "  Ferris  "))
	require.NoError(t, store.UpdateBio(ctx, db, u.ID, "hello"))

	fetched, err := store.Get(ctx, db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ferris", fetched.Name)
	assert.Equal(t, "hello", fetched.Bio)

	assert.ErrorIs(t, store.UpdateName(ctx, db, u.ID, "   "), user.ErrInvalidName)
	assert.ErrorIs(t, store.UpdateName(ctx, db, u.ID, strings.Repeat("a", user.MaxNameLength+1)), user.ErrInvalidName)
	assert.ErrorIs(t, store.UpdateBio(ctx, db, u.ID, strings.Repeat("a", user.MaxBioLength+1)), user.ErrInvalidBio)
	assert.ErrorIs(t, store.UpdateName(ctx, db, u.ID+100, "Ghost"), user.ErrUserNotFound)

	_, err = store.Get(ctx, db, u.ID+100)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
