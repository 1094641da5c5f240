package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendo-app/attendo-backend-go/internal/domain/auth"
	"github.com/attendo-app/attendo-backend-go/internal/domain/preference"
	"github.com/attendo-app/attendo-backend-go/internal/domain/user"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.AdminRepository
	jwt.Service
}

func NewAuthService(adminRepository user.AdminRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		AdminRepository: adminRepository,
		Service:         jwtService,
	}
}

// LoginAdmin implements auth.AuthService.
func (a *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	admin, err := a.AdminRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// RegisterAdmin implements auth.AuthService.
func (a *AuthServiceImpl) RegisterAdmin(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if _, err := a.AdminRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.LoginResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrAdminNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to check existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.AdminRepository.Create(ctx, user.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		Theme:        preference.ThemeLight,
	})
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create admin: %w", err)
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(created.ID, created.Email, string(created.Role))
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// RequestReset implements auth.AuthService.
func (a *AuthServiceImpl) RequestReset(ctx context.Context, req auth.RequestResetRequest) (string, error) {
	admin, err := a.AdminRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrAdminNotFound) {
			// The response is identical whether or not the account exists, so
			// the endpoint cannot be used to probe for registered emails.
			return "", nil
		}
		return "", fmt.Errorf("failed to get admin by email: %w", err)
	}

	token, _, err := a.Service.GenerateResetToken(admin.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create reset token: %w", err)
	}

	return token, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	admin, err := a.AdminRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrAdminNotFound) {
			return auth.MeResponse{}, user.ErrAdminNotFound
		}
		return auth.MeResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return auth.MeResponse{
		Username: admin.Username,
		Role:     string(admin.Role),
		Image:    admin.Image,
		Email:    admin.Email,
	}, nil
}
