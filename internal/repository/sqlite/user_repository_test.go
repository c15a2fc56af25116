package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"user-manager/internal/domain"
	"user-manager/internal/repository"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func testUser(email, username string) *domain.User {
	return &domain.User{
		Email:          email,
		Username:       username,
		FirstName:      "Test",
		LastName:       "User",
		HashedPassword: "$2a$10$fakefakefakefakefakefake",
		IsActive:       true,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := testUser("test@example.com", "testuser")
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))
	require.Equal(t, id, user.ID)
	require.False(t, user.CreatedAt.IsZero())
	require.Nil(t, user.UpdatedAt)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "test@example.com", byID.Email)
	require.Equal(t, "testuser", byID.Username)
	require.True(t, byID.IsActive)
	require.Nil(t, byID.UpdatedAt)

	byEmail, err := repo.GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)

	byUsername, err := repo.GetByUsername(ctx, "testuser")
	require.NoError(t, err)
	require.Equal(t, id, byUsername.ID)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser("test@example.com", "testuser"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testUser("test@example.com", "other"))
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	_, err = repo.Create(ctx, testUser("other@example.com", "testuser"))
	require.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestUserRepository_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, u := range []*domain.User{
		testUser("a@example.com", "alice"),
		testUser("b@example.com", "bob"),
		testUser("c@example.com", "carol"),
	} {
		_, err := repo.Create(ctx, u)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "alice", all[0].Username)
	require.Equal(t, "carol", all[2].Username)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "bob", page[0].Username)

	empty, err := repo.List(ctx, 10, 100)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestUserRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := testUser("test@example.com", "testuser")
	_, err := repo.Create(ctx, user)
	require.NoError(t, err)

	now := time.Now().UTC()
	user.FirstName = "Updated"
	user.IsActive = false
	user.UpdatedAt = &now
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated", got.FirstName)
	require.False(t, got.IsActive)
	require.NotNil(t, got.UpdatedAt)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	user := testUser("test@example.com", "testuser")
	user.ID = 999
	err := repo.Update(context.Background(), user)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_UpdateDuplicate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser("a@example.com", "alice"))
	require.NoError(t, err)

	bob := testUser("b@example.com", "bob")
	_, err = repo.Create(ctx, bob)
	require.NoError(t, err)

	bob.Email = "a@example.com"
	require.ErrorIs(t, repo.Update(ctx, bob), repository.ErrDuplicateEmail)

	bob.Email = "b@example.com"
	bob.Username = "alice"
	require.ErrorIs(t, repo.Update(ctx, bob), repository.ErrDuplicateUsername)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := testUser("test@example.com", "testuser")
	_, err := repo.Create(ctx, user)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
