package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie_reviews/internal/db"
	"movie_reviews/internal/events"
	"movie_reviews/internal/repository"
	"movie_reviews/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testServer struct {
	router *gin.Engine
	store  *gorm.DB
	events *events.Recorder
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithCache(t, utils.NewCache(nil, time.Minute))
}

// newCachedTestServer backs the list cache with an in-process Redis.
func newCachedTestServer(t *testing.T) (*testServer, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return newTestServerWithCache(t, utils.NewCache(rdb, time.Minute)), mr
}

func newTestServerWithCache(t *testing.T, cache *utils.Cache) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(store) })
	require.NoError(t, db.Migrate(store))
	require.NoError(t, repository.NewRoleRepo(store).Ensure(context.Background(), "admin", "user"))

	rec := &events.Recorder{}
	r := gin.New()
	RegisterRoutes(r, Deps{
		Users:     repository.NewUserRepo(store, bcrypt.MinCost),
		Genres:    repository.NewGenreRepo(store),
		Movies:    repository.NewMovieRepo(store),
		Reviews:   repository.NewReviewRepo(store),
		Cache:     cache,
		Events:    rec,
		JWTSecret: testSecret,
		JWTTTL:    time.Hour,
	})
	return &testServer{router: r, store: store, events: rec}
}

// do sends body (a raw string or a value marshalled to JSON) and decodes the
// JSON response into a map.
func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	}
	return w, out
}

// register creates a user through the API and fails the test otherwise.
func (s *testServer) register(t *testing.T, email, password, fullName, role string) map[string]any {
	t.Helper()
	w, body := s.do(t, http.MethodPost, "/register", gin.H{
		"email": email, "password": password, "fullName": fullName, "role": role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return body["data"].(map[string]any)
}

func (s *testServer) addMovie(t *testing.T, title string, year, ratings int) float64 {
	t.Helper()
	w, body := s.do(t, http.MethodPost, "/movie_reviews/movies", gin.H{"title": title, "year": year, "ratings": ratings})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return body["data"].(map[string]any)["id"].(float64)
}

func (s *testServer) addGenre(t *testing.T, name string) float64 {
	t.Helper()
	w, body := s.do(t, http.MethodPost, "/movie_reviews/genre", gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return body["data"].(map[string]any)["id"].(float64)
}
