package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightboard/insightboard-be/internal/models"
	"github.com/insightboard/insightboard-be/internal/storage"
)

func TestFindByID_MalformedID(t *testing.T) {
	t.Parallel()

	// Identifier validation happens before any query, so no pool is needed.
	s := &Store{}
	_, err := s.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// TestStoreIntegration exercises the store against a live database.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	store, err := NewUserStore(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()

	username := fmt.Sprintf("storetest_%d", time.Now().UnixNano())
	created, err := store.Create(ctx, models.User{
		Name:         "Store Test",
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, username, created.Username)

	// Uniqueness is case-insensitive and enforced by the index.
	_, err = store.Create(ctx, models.User{
		Name:         "Imposter",
		Username:     "STORETEST_" + username[len("storetest_"):],
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	// Lookup matches regardless of case and includes the hash.
	found, err := store.FindByUsername(ctx, "STORETEST_"+username[len("storetest_"):])
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.NotEmpty(t, found.PasswordHash)

	// By-id lookup excludes the hash.
	byID, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)
	assert.Empty(t, byID.PasswordHash)

	_, err = store.FindByUsername(ctx, "does-not-exist-"+username)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
