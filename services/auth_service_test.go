package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/repositories"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func testUserRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	sportID := 1
	return &fakeUserRepo{users: map[string]*models.User{
		"admin@carnival.test": {
			ID:           1,
			Email:        "admin@carnival.test",
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
		},
		"cricket@carnival.test": {
			ID:           2,
			Email:        "cricket@carnival.test",
			Username:     "cricket-admin",
			PasswordHash: string(hash),
			Role:         models.RoleSportAdmin,
			SportID:      &sportID,
		},
	}}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(testUserRepo(t))

	user, err := svc.Login(context.Background(), LoginInput{
		Email:    "admin@carnival.test",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.ID != 1 || user.Role != models.RoleSuperAdmin {
		t.Errorf("user = %+v", user)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked past login")
	}
}

func TestLoginRejections(t *testing.T) {
	svc := NewAuthService(testUserRepo(t))

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"unknown email", LoginInput{Email: "nobody@carnival.test", Password: "correct horse"}},
		{"wrong password", LoginInput{Email: "admin@carnival.test", Password: "wrong"}},
		{"empty password", LoginInput{Email: "admin@carnival.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tt.input); !errors.Is(err, ErrAuthInvalidCredentials) {
				t.Errorf("error = %v, want ErrAuthInvalidCredentials", err)
			}
		})
	}
}

func TestGetUserByID(t *testing.T) {
	svc := NewAuthService(testUserRepo(t))

	user, err := svc.GetUserByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetUserByID() error: %v", err)
	}
	if user.SportID == nil || *user.SportID != 1 {
		t.Errorf("SportID = %v, want 1", user.SportID)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked")
	}

	if _, err := svc.GetUserByID(context.Background(), 404); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}
