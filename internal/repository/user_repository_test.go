package repository_test

import (
	"context"
	"sync"
	"testing"

	"movie_reviews/internal/domain"
	"movie_reviews/internal/repository"
	"movie_reviews/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_Create(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	u, err := r.users.Create(ctx, repository.CreateUserParams{
		Email: "ann@example.com", Password: "hunter2", FullName: "Ann Lee", RoleName: "admin",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	require.NotNil(t, u.RoleName())
	assert.Equal(t, "admin", *u.RoleName())

	var stored domain.User
	require.NoError(t, r.store.First(&stored, u.ID).Error)
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.True(t, utils.VerifyPassword(stored.Password, "hunter2"))
	require.NotNil(t, stored.RoleID)
}

func TestUserRepo_Create_UnknownRoleLeavesUnset(t *testing.T) {
	r := newTestRepos(t)

	u, err := r.users.Create(context.Background(), repository.CreateUserParams{
		Email: "bob@example.com", Password: "pw", FullName: "Bob", RoleName: "wizard",
	})
	require.NoError(t, err)
	assert.Nil(t, u.RoleID)
	assert.Nil(t, u.RoleName())

	found, err := r.users.FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, found.Role)
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	params := repository.CreateUserParams{Email: "dup@example.com", Password: "pw", FullName: "First", RoleName: "user"}

	_, err := r.users.Create(ctx, params)
	require.NoError(t, err)

	params.FullName = "Second"
	_, err = r.users.Create(ctx, params)
	assert.ErrorIs(t, err, repository.ErrConflict)

	found, err := r.users.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First", found.FullName, "existing user must not be overwritten")
}

func TestUserRepo_Create_ConcurrentDuplicate(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	const n = 4
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.users.Create(ctx, repository.CreateUserParams{
				Email: "race@example.com", Password: "pw", FullName: "Racer", RoleName: "user",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, repository.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, r.store.Model(&domain.User{}).Where("email = ?", "race@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepo_Authenticate(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	_, err := r.users.Create(ctx, repository.CreateUserParams{
		Email: "cat@example.com", Password: "meow", FullName: "Cat", RoleName: "user",
	})
	require.NoError(t, err)

	u, err := r.users.Authenticate(ctx, "cat@example.com", "meow")
	require.NoError(t, err)
	assert.Equal(t, "cat@example.com", u.Email)

	_, err = r.users.Authenticate(ctx, "cat@example.com", "woof")
	assert.ErrorIs(t, err, repository.ErrNotAuthenticated)

	_, err = r.users.Authenticate(ctx, "nobody@example.com", "meow")
	assert.ErrorIs(t, err, repository.ErrNotAuthenticated)

	_, err = r.users.Authenticate(ctx, "cat@example.com", "")
	assert.ErrorIs(t, err, repository.ErrNotAuthenticated)
}

func TestUserRepo_FindByEmail_NotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.users.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_Update(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	created, err := r.users.Create(ctx, repository.CreateUserParams{
		Email: "dan@example.com", Password: "old", FullName: "Dan", RoleName: "user",
	})
	require.NoError(t, err)
	var before domain.User
	require.NoError(t, r.store.First(&before, created.ID).Error)

	t.Run("full name only keeps password", func(t *testing.T) {
		u, err := r.users.Update(ctx, "dan@example.com", repository.UpdateUserParams{FullName: strPtr("Daniel")})
		require.NoError(t, err)
		assert.Equal(t, "Daniel", u.FullName)
		assert.Equal(t, before.Password, u.Password)
		require.NotNil(t, u.RoleName())
		assert.Equal(t, "user", *u.RoleName())
	})

	t.Run("password only keeps full name", func(t *testing.T) {
		u, err := r.users.Update(ctx, "dan@example.com", repository.UpdateUserParams{Password: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "Daniel", u.FullName)
		assert.NotEqual(t, before.Password, u.Password)
		assert.True(t, utils.VerifyPassword(u.Password, "new"))
		assert.False(t, utils.VerifyPassword(u.Password, "old"))
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		u, err := r.users.Update(ctx, "dan@example.com", repository.UpdateUserParams{FullName: strPtr(""), Password: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "Daniel", u.FullName)
		assert.True(t, utils.VerifyPassword(u.Password, "new"))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := r.users.Update(ctx, "ghost@example.com", repository.UpdateUserParams{FullName: strPtr("Ghost")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRoleRepo_EnsureIsIdempotent(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, r.roles.Ensure(ctx, "admin", "critic"))
	require.NoError(t, r.roles.Ensure(ctx))

	roles, err := r.roles.List(ctx)
	require.NoError(t, err)
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.Name
	}
	assert.Equal(t, []string{"admin", "user", "critic"}, names)
}
