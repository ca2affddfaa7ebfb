package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courseforge/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims util.Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(UserContextKey).(string); ok {
			gotUser = id
		}
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(testSecret)(next), &gotUser
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	handler, gotUser := protected(t)

	claims := util.Claims{
		Name:    "Test User",
		Picture: "https://example.com/a.png",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if *gotUser != "user_1" {
		t.Errorf("user in context = %q, want user_1", *gotUser)
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	handler, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	handler, _ := protected(t)
	claims := util.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims, "other-secret"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareNoSubject(t *testing.T) {
	handler, _ := protected(t)
	claims := util.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	handler, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
