package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)), Auth(testSecret))

	r.GET("/whoami", func(c *ginext.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": actor.UserID, "is_staff": actor.IsStaff})
	})
	r.GET("/private", RequireAuth(), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_Anonymous(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/whoami", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"","is_staff":false}`, w.Body.String())
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupRouter(t)
	token, err := IssueToken(testSecret, "user-1", true, time.Hour)
	require.NoError(t, err)

	w := do(r, "/whoami", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-1","is_staff":true}`, w.Body.String())
}

func TestAuth_WrongSecret(t *testing.T) {
	r := setupRouter(t)
	token, err := IssueToken("other-secret", "user-1", false, time.Hour)
	require.NoError(t, err)

	w := do(r, "/whoami", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_Expired(t *testing.T) {
	r := setupRouter(t)
	token, err := IssueToken(testSecret, "user-1", false, -time.Minute)
	require.NoError(t, err)

	w := do(r, "/whoami", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectsNonHMAC(t *testing.T) {
	r := setupRouter(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := do(r, "/whoami", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth(t *testing.T) {
	r := setupRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "").Code)

	token, err := IssueToken(testSecret, "user-1", false, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, do(r, "/private", token).Code)
}

func TestRequestID(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/whoami", "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(requestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"https://app.example.com"}))
	r.POST("/api/bookings", func(c *ginext.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
