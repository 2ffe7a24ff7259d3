package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/jhoicas/storefront-backend/internal/application/dto"
	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin único rol emitido por este backend.
const RoleAdmin = "admin"

// Config credenciales del admin y secretos de firma.
type Config struct {
	AdminEmail        string
	AdminPasswordHash string // bcrypt
	JWTSecret         string
	CookieSecret      string
	ExpMinutes        int
	Issuer            string
}

// AdminAuthUseCase login del admin contra las credenciales configuradas.
type AdminAuthUseCase struct {
	cfg Config
}

// NewAdminAuthUseCase construye el caso de uso de auth.
func NewAdminAuthUseCase(cfg Config) *AdminAuthUseCase {
	return &AdminAuthUseCase{cfg: cfg}
}

// Login verifica email/password y emite el bearer token (JWT_SECRET) y el token de sesión (COOKIE_SECRET).
// Sin hash configurado ningún login es válido.
func (uc *AdminAuthUseCase) Login(in dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if uc.cfg.AdminPasswordHash == "" || uc.cfg.AdminEmail == "" {
		return nil, domain.ErrUnauthorized
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(uc.cfg.AdminEmail))) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, email, RoleAdmin, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	session, err := jwt.Generate(uc.cfg.CookieSecret, email, RoleAdmin, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{Token: token, SessionToken: session}, nil
}
