package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-api/internal/application/auth"
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/jwt"
)

const secret = "auth-test-secret"

type memUsers struct {
	repository.UserRepository
	mu     sync.Mutex
	byMail map[string]*entity.User
	nextID int64
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byMail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.byMail[u.Email] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byMail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuth() *auth.AuthUseCase {
	repo := &memUsers{byMail: map[string]*entity.User{}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}).
		WithCost(bcrypt.MinCost)
}

func TestRegisterAndLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Dara", Email: "Dara@Example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "dara@example.com", u.Email)
	assert.Equal(t, entity.RoleNone, u.Role, "self-registered users start without privileges")

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "dara@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	userID, role, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Empty(t, role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	in := dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password1"}

	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.CreateUserWithRole(ctx, dto.RegisterRequest{Email: "boss@example.com", Password: "password1"}, entity.RoleAdmin)
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "boss@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "boss@example.com", Password: "password1"})
	require.NoError(t, err)
	_, role, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}
