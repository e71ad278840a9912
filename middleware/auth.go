package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/services"
	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const adminContextKey contextKey = "admin"

const (
	jwtClaimUserID  = "user_id"
	jwtClaimRole    = "role"
	jwtClaimSportID = "sport_id"
)

var ErrNoAdminContext = errors.New("admin context not found in request context")

// Authenticator verifies bearer tokens and places the caller's session
// context into the request context for the mutation gateway.
type Authenticator struct {
	jwtSecret []byte
}

func NewAuthenticator(jwtSecret string) *Authenticator {
	return &Authenticator{jwtSecret: []byte(jwtSecret)}
}

// Authenticate rejects requests without a valid HS256 bearer token.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			unauthorized(w, err.Error())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected token signing method")
			}
			return a.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			unauthorized(w, "invalid or expired token")
			return
		}

		admin, err := adminFromClaims(claims)
		if err != nil {
			unauthorized(w, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperAdmin guards routes only the cross-sport role may hit. It must
// run after Authenticate.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := AdminFromContext(r.Context())
		if err != nil {
			unauthorized(w, "authentication required")
			return
		}
		if !admin.IsSuperAdmin() {
			forbidden(w, services.ErrSuperAdminRequired.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminFromContext retrieves the session context placed by Authenticate.
func AdminFromContext(ctx context.Context) (services.AdminContext, error) {
	admin, ok := ctx.Value(adminContextKey).(services.AdminContext)
	if !ok {
		return services.AdminContext{}, ErrNoAdminContext
	}
	return admin, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("authorization header must be a bearer token")
	}
	return parts[1], nil
}

func adminFromClaims(claims jwt.MapClaims) (services.AdminContext, error) {
	userIDFloat, ok := claims[jwtClaimUserID].(float64)
	if !ok || userIDFloat != float64(int(userIDFloat)) || int(userIDFloat) <= 0 {
		return services.AdminContext{}, errors.New("missing or invalid user_id claim")
	}

	roleStr, ok := claims[jwtClaimRole].(string)
	if !ok {
		return services.AdminContext{}, errors.New("missing role claim")
	}
	role := models.UserRole(roleStr)
	if !role.Valid() {
		return services.AdminContext{}, errors.New("invalid role claim")
	}

	admin := services.AdminContext{
		UserID: int(userIDFloat),
		Role:   role,
	}

	if sportIDFloat, ok := claims[jwtClaimSportID].(float64); ok && sportIDFloat > 0 {
		sportID := int(sportIDFloat)
		admin.SportID = &sportID
	}
	if role == models.RoleSportAdmin && admin.SportID == nil {
		return services.AdminContext{}, errors.New("sport admin token missing sport_id claim")
	}

	return admin, nil
}

func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, message)
}

func forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error": "` + message + `"}` + "\n"))
}
