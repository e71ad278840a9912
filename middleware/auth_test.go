package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/services"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func authRequest(token string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/admin/matches", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func runAuthenticate(t *testing.T, r *http.Request) (*httptest.ResponseRecorder, *services.AdminContext) {
	t.Helper()
	var captured *services.AdminContext
	handler := NewAuthenticator(testSecret).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := AdminFromContext(r.Context())
			if err != nil {
				t.Fatalf("AdminFromContext() error: %v", err)
			}
			captured = &admin
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec, captured
}

func TestAuthenticateSuperAdmin(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 1,
		"role":    string(models.RoleSuperAdmin),
	})

	rec, admin := runAuthenticate(t, authRequest(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if admin.UserID != 1 || admin.Role != models.RoleSuperAdmin {
		t.Errorf("admin = %+v", admin)
	}
	if admin.SportID != nil {
		t.Errorf("SportID = %v, want nil", admin.SportID)
	}
}

func TestAuthenticateSportAdminCarriesSportID(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id":  2,
		"role":     string(models.RoleSportAdmin),
		"sport_id": 7,
	})

	rec, admin := runAuthenticate(t, authRequest(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if admin.SportID == nil || *admin.SportID != 7 {
		t.Errorf("SportID = %v, want 7", admin.SportID)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *http.Request
	}{
		{
			name:  "no header",
			setup: func(t *testing.T) *http.Request { return authRequest("") },
		},
		{
			name: "malformed header",
			setup: func(t *testing.T) *http.Request {
				r := authRequest("")
				r.Header.Set("Authorization", "Token abc")
				return r
			},
		},
		{
			name: "wrong secret",
			setup: func(t *testing.T) *http.Request {
				return authRequest(signToken(t, "other-secret", jwt.MapClaims{
					"user_id": 1,
					"role":    string(models.RoleSuperAdmin),
				}))
			},
		},
		{
			name: "expired token",
			setup: func(t *testing.T) *http.Request {
				return authRequest(signToken(t, testSecret, jwt.MapClaims{
					"user_id": 1,
					"role":    string(models.RoleSuperAdmin),
					"exp":     time.Now().Add(-time.Hour).Unix(),
				}))
			},
		},
		{
			name: "unknown role",
			setup: func(t *testing.T) *http.Request {
				return authRequest(signToken(t, testSecret, jwt.MapClaims{
					"user_id": 1,
					"role":    "MODERATOR",
				}))
			},
		},
		{
			name: "sport admin without sport_id",
			setup: func(t *testing.T) *http.Request {
				return authRequest(signToken(t, testSecret, jwt.MapClaims{
					"user_id": 2,
					"role":    string(models.RoleSportAdmin),
				}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthenticator(testSecret).Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Error("handler reached with invalid credentials")
				}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.setup(t))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	protected := RequireSuperAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("super admin passes", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": 1,
			"role":    string(models.RoleSuperAdmin),
		})
		rec := httptest.NewRecorder()
		NewAuthenticator(testSecret).Authenticate(protected).ServeHTTP(rec, authRequest(token))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("sport admin forbidden", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id":  2,
			"role":     string(models.RoleSportAdmin),
			"sport_id": 7,
		})
		rec := httptest.NewRecorder()
		NewAuthenticator(testSecret).Authenticate(protected).ServeHTTP(rec, authRequest(token))
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, authRequest(""))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
