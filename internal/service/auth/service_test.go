package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopledesk/hr-admin-backend/internal/domain/auth"
	"github.com/peopledesk/hr-admin-backend/internal/domain/user"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	return nil
}

func newTestService(users map[string]user.User) auth.AuthService {
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(&fakeUserRepo{users: users}, jwtSvc)
}

func testUser(email, password string, role user.Role, active bool) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	h := string(hash)
	return user.User{
		ID:           "user-1",
		Email:        email,
		PasswordHash: &h,
		Role:         role,
		IsActive:     active,
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(map[string]user.User{
		"admin@example.com": testUser("admin@example.com", "password123", user.RoleAdmin, true),
	})

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Admin", result.Role)
	assert.Greater(t, result.AccessTokenExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(map[string]user.User{
		"admin@example.com": testUser("admin@example.com", "password123", user.RoleAdmin, true),
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc := newTestService(map[string]user.User{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc := newTestService(map[string]user.User{
		"gone@example.com": testUser("gone@example.com", "password123", user.RoleEmployee, false),
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "gone@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestLogin_ValidationFailure(t *testing.T) {
	svc := newTestService(map[string]user.User{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
}
