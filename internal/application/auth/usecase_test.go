package auth_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Avesta-api/internal/application/auth"
	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store falso en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	ds        *entity.Dataset
	persisted bool
}

func (f *fakeStore) Fetch(_ context.Context) (*entity.Dataset, error) { return f.ds, nil }
func (f *fakeStore) Persist(_ context.Context, ds *entity.Dataset) error {
	f.ds = ds
	f.persisted = true
	return nil
}

func sha256hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func newUC(users ...*entity.User) (*auth.AuthUseCase, *fakeStore) {
	store := &fakeStore{ds: &entity.Dataset{Users: users}}
	uc := auth.NewAuthUseCase(store, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"})
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Las tres generaciones de credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PasswordBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	uc, store := newUC(&entity.User{Username: "admin", Password: string(hash), Role: entity.RoleAdmin})
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.True(t, store.persisted, "el login sella userLastLogin")
	assert.NotZero(t, store.ds.UserLastLogin["admin"])
}

// La aplicación web heredada guardaba SHA-256 hex sin sal.
func TestLogin_PasswordSHA256Heredado(t *testing.T) {
	uc, _ := newUC(&entity.User{Username: "kasir", Password: sha256hex("clave-vieja"), Role: entity.RoleCashier})
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "kasir", Password: "clave-vieja"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// Cuentas muy antiguas que nunca pasaron por la migración: texto plano.
func TestLogin_PasswordTextoPlano(t *testing.T) {
	uc, _ := newUC(&entity.User{Username: "viejo", Password: "tal-cual", Role: entity.RoleManager})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "viejo", Password: "tal-cual"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "viejo", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CuentaBloqueada(t *testing.T) {
	uc, _ := newUC(&entity.User{Username: "admin", Password: "x", Blocked: true})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserBlocked)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Una cuenta lógicamente borrada no puede iniciar sesión.
func TestLogin_CuentaBorrada(t *testing.T) {
	uc, _ := newUC(&entity.User{Username: "ex", Password: "x", IsDeleted: true})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ex", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("buena"), bcrypt.MinCost)
	uc, _ := newUC(&entity.User{Username: "admin", Password: string(hash)})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
