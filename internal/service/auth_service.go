package service

import (
	"context"
	"errors"
	"os"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"
	"finadmin/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Permission codes guarding the administrative APIs. Each role maps to a
// fixed set issued as JWT claims; permission administration itself is
// not part of this slice.
const (
	PermCodesRead          = "codes.read"
	PermCodesWrite         = "codes.write"
	PermCodeValuesRead     = "codevalues.read"
	PermCodeValuesWrite    = "codevalues.write"
	PermClientsRead        = "clients.read"
	PermClientsWrite       = "clients.write"
	PermClientAddressRead  = "clientaddress.read"
	PermClientAddressWrite = "clientaddress.write"
	PermAuditRead          = "audit.read"
)

var rolePermissions = map[string][]string{
	model.RoleAdmin: {
		PermCodesRead, PermCodesWrite, PermCodeValuesRead, PermCodeValuesWrite,
		PermClientsRead, PermClientsWrite, PermClientAddressRead, PermClientAddressWrite,
		PermAuditRead,
	},
	model.RoleOperations: {
		PermCodesRead, PermCodeValuesRead, PermCodeValuesWrite,
		PermClientsRead, PermClientsWrite, PermClientAddressRead, PermClientAddressWrite,
	},
	model.RoleReadOnly: {
		PermCodesRead, PermCodeValuesRead, PermClientsRead, PermClientAddressRead, PermAuditRead,
	},
}

// --- DTOs ---

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// --- Interface ---

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	// SeedAdmin creates the bootstrap admin account when no user with
	// that username exists yet.
	SeedAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid username or password")
	}

	perms, ok := rolePermissions[user.Role]
	if !ok {
		return nil, apperrors.Invalid("role", "unknown role "+user.Role)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         user.ID.String(),
		"role":        user.Role,
		"permissions": perms,
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString}, nil
}

func (s *authService) SeedAdmin(ctx context.Context, username, password string) error {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	return s.users.Create(ctx, &model.User{
		Username: username,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	})
}
