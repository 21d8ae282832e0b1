package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongcao0114/ecommerce-app/internal/application/auth"
	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
	"github.com/phongcao0114/ecommerce-app/internal/domain"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:            "test-secret",
		ExpMinutes:        60,
		RefreshExpMinutes: 60 * 24,
		Issuer:            "ecommerce-app-test",
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolUser(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "secreto123",
		Name:     "Nuevo Usuario",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "nuevo@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role, "todo registro entra con rol USER")

	stored, _ := repo.GetByEmail("nuevo@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "y12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteParDeTokens(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, "a@example.com", out.User.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "fantasma@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRefresh_EmiteNuevoParDeTokens(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)

	login, err := uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRefresh_RechazaTokenDeAcceso(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)

	login, err := uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "secreto123"})
	require.NoError(t, err)

	// el token de acceso no sirve como refresh token
	_, err = uc.Refresh(login.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
