// Package auth autentica cuentas contra el dataset compartido y emite
// tokens JWT con el rol y los grupos de almacén del usuario.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	store  ports.DatasetStore
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store ports.DatasetStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica username/password contra las cuentas del dataset, sella el
// último acceso y devuelve token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	ds, err := uc.store.Fetch(ctx)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	if ds == nil {
		return nil, domain.ErrUserNotFound
	}
	user := ds.FindUser(in.Username)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Blocked {
		return nil, domain.ErrUserBlocked
	}
	if !verifyPassword(user.Password, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, user.WarehouseGroup, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Sello de último acceso, best-effort: un fallo al persistir no debe
	// tumbar un login ya verificado.
	if ds.UserLastLogin == nil {
		ds.UserLastLogin = map[string]int64{}
	}
	ds.UserLastLogin[user.Username] = uc.now().UnixMilli()
	_ = uc.store.Persist(ctx, ds)

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Username:        user.Username,
			Name:            user.Name,
			Role:            user.Role,
			WarehouseGroups: user.WarehouseGroup,
		},
	}, nil
}

// verifyPassword acepta las tres generaciones de credenciales del dataset:
// bcrypt (cuentas nuevas), SHA-256 hex sin sal (la aplicación web heredada) y
// texto plano (cuentas muy antiguas que nunca pasaron por la migración).
func verifyPassword(stored, plain string) bool {
	switch {
	case strings.HasPrefix(stored, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	case len(stored) == 64 && isHex(stored):
		sum := sha256.Sum256([]byte(plain))
		return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(strings.ToLower(stored))) == 1
	default:
		return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1 && stored != ""
	}
}

// HashPassword genera el hash bcrypt para cuentas nuevas.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)
	return err == nil
}
