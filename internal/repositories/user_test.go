package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMemoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	alice, err := repo.Save(ctx, "alice", "hash-a")
	require.NoError(t, err)
	bob, err := repo.Save(ctx, "bob", "hash-b")
	require.NoError(t, err)

	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, int64(2), bob.ID)

	tests := []struct {
		name     string
		id       int64
		wantName string
		wantNil  bool
	}{
		{name: "first user", id: 1, wantName: "alice"},
		{name: "second user", id: 2, wantName: "bob"},
		{name: "missing user", id: 3, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.GetByID(ctx, tt.id)
			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, user)
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, tt.wantName, user.Username)
		})
	}
}

func TestUserMemoryRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	_, err := repo.Save(ctx, "alice", "first")
	require.NoError(t, err)
	_, err = repo.Save(ctx, "alice", "second")
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "first", user.Password)

	missing, err := repo.GetByUsername(ctx, "carol")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
