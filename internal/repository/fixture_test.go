package repository_test

import (
	"context"
	"testing"

	"movie_reviews/internal/db"
	"movie_reviews/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test fixture
// ─────────────────────────────────────────────────────────────────────────────

type repos struct {
	store   *gorm.DB
	roles   *repository.RoleRepo
	users   *repository.UserRepo
	genres  *repository.GenreRepo
	movies  *repository.MovieRepo
	reviews *repository.ReviewRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()

	store, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err, "open")
	t.Cleanup(func() { _ = db.Close(store) })
	require.NoError(t, db.Migrate(store), "schema")

	r := repos{
		store:   store,
		roles:   repository.NewRoleRepo(store),
		users:   repository.NewUserRepo(store, bcrypt.MinCost),
		genres:  repository.NewGenreRepo(store),
		movies:  repository.NewMovieRepo(store),
		reviews: repository.NewReviewRepo(store),
	}
	require.NoError(t, r.roles.Ensure(context.Background(), "admin", "user"), "seed roles")
	return r
}

func strPtr(s string) *string { return &s }
