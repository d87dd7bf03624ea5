package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testUserID = "0195fe12-7a5d-7c3a-9e44-1b2c3d4e5f60"

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/test", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doAuthRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid_token_sets_user_id", func(t *testing.T) {
		token, err := GenerateAccessToken(testUserID)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := doAuthRequest(setupAuthRouter(), "Bearer "+token)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseBody(t, rec)
		if body["user_id"] != testUserID {
			t.Errorf("expected user_id %s, got %v", testUserID, body["user_id"])
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		rec := doAuthRequest(setupAuthRouter(), "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong_scheme", func(t *testing.T) {
		rec := doAuthRequest(setupAuthRouter(), "Basic dXNlcjpwYXNz")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		rec := doAuthRequest(setupAuthRouter(), "Bearer not.a.jwt")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("refresh_token_rejected_as_access", func(t *testing.T) {
		claims := &JWTClaims{
			UserID:    testUserID,
			TokenType: "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTKey())
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		rec := doAuthRequest(setupAuthRouter(), "Bearer "+token)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("expired_token_rejected", func(t *testing.T) {
		claims := &JWTClaims{
			UserID:    testUserID,
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTKey())
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		rec := doAuthRequest(setupAuthRouter(), "Bearer "+token)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}
