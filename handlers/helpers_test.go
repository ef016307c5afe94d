package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chatterbox/config"
	"chatterbox/handlers"
	"chatterbox/middleware"
	"chatterbox/routes"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		Port:        "8080",
		MongoDB:     "chatter-box-test",
		JWTSecret:   testSecret,
		AppEnv:      "development",
		CORSOrigins: []string{"http://localhost:5173"},
	}
}

// newTestRouter assembles the full router over a mocked store so the
// auth middleware runs exactly as in production.
func newTestRouter(t *testing.T, db *MockStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	h := handlers.New(db, cfg, zap.NewNop())
	return routes.SetupRouter(h, db, cfg, zap.NewNop())
}

func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	token, err := middleware.SignSession(email, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
