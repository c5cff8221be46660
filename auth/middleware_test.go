package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"social-api/models"
	"social-api/repositories"
)

func newTestMiddleware(t *testing.T) (*Middleware, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	users := repositories.NewUserRepository(db)
	user := &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, users.Create(user))

	return NewMiddleware(users, []byte("test-secret")), user
}

func doAuthedRequest(mw *Middleware, authHeader string) (*httptest.ResponseRecorder, *models.User) {
	var resolved *models.User
	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		resolved = CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec, resolved
}

func TestRequireAuth_ResolvesUser(t *testing.T) {
	mw, user := newTestMiddleware(t)

	tok, err := GenerateToken(user.ID, mw.Secret, time.Hour)
	require.NoError(t, err)

	rec, resolved := doAuthedRequest(mw, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	rec, resolved := doAuthedRequest(mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing token")
	assert.Nil(t, resolved)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	rec, resolved := doAuthedRequest(mw, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.Nil(t, resolved)
}

func TestRequireAuth_UserNoLongerExists(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	// Valid signature for an id with no row behind it.
	tok, err := GenerateToken(999, mw.Secret, time.Hour)
	require.NoError(t, err)

	rec, resolved := doAuthedRequest(mw, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
	assert.Nil(t, resolved)
}
