package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{Secret: "test-secret", Issuer: "sproutish.identity"}

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func defaultClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":    "user-1",
		"iss":    testConfig.Issuer,
		"exp":    time.Now().Add(time.Hour).Unix(),
		"scopes": []string{ScopeHabitsRead, ScopeHabitsWrite},
	}
}

func TestParseValidToken(t *testing.T) {
	token := mintToken(t, testConfig.Secret, defaultClaims())

	claims, err := Parse(token, testConfig)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.True(t, claims.HasScope(ScopeHabitsRead))
	require.True(t, claims.HasScope(ScopeHabitsWrite))
	require.False(t, claims.HasScope("activities:read"))
}

func TestParseSpaceSeparatedScopes(t *testing.T) {
	raw := defaultClaims()
	raw["scopes"] = ScopeHabitsRead + " " + ScopeHabitsWrite
	token := mintToken(t, testConfig.Secret, raw)

	claims, err := Parse(token, testConfig)
	require.NoError(t, err)
	require.True(t, claims.HasScope(ScopeHabitsWrite))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token := mintToken(t, "other-secret", defaultClaims())

	_, err := Parse(token, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	raw := defaultClaims()
	raw["iss"] = "someone-else"
	token := mintToken(t, testConfig.Secret, raw)

	_, err := Parse(token, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	raw := defaultClaims()
	raw["exp"] = time.Now().Add(-time.Hour).Unix()
	token := mintToken(t, testConfig.Secret, raw)

	_, err := Parse(token, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSubject(t *testing.T) {
	raw := defaultClaims()
	delete(raw, "sub")
	token := mintToken(t, testConfig.Secret, raw)

	_, err := Parse(token, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddlewareInjectsClaims(t *testing.T) {
	token := mintToken(t, testConfig.Secret, defaultClaims())
	middleware := NewMiddleware(testConfig, nil)

	var seen *Claims
	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/habits/today", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	require.Equal(t, "user-1", seen.Subject)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	middleware := NewMiddleware(testConfig, nil)
	handler := middleware.Wrap(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/habits/today", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareSkipper(t *testing.T) {
	middleware := NewMiddleware(testConfig, func(r *http.Request) bool {
		return r.URL.Path == "/healthz"
	})

	called := false
	handler := middleware.Wrap(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, called)
}
