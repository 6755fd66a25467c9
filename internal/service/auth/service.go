package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yamato-foods/backoffice-go/internal/domain/auth"
	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	staffRepo  staff.StaffRepository
	jwtService jwt.Service
}

func NewAuthService(staffRepo staff.StaffRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
// An unknown code and a wrong PIN return the same error, so the terminal
// leaks nothing about which codes exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	st, err := s.staffRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get staff by code: %w", err)
	}

	if !st.IsActive {
		return auth.LoginResponse{}, staff.ErrStaffInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(st.PINHash), []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	isAdmin := st.Role == "admin"
	token, expiresAt, err := s.jwtService.GenerateAccessToken(st.ID, st.CompanyID, st.Role, isAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		StaffID:     st.ID,
		Name:        st.Name,
		Role:        st.Role,
		IsAdmin:     isAdmin,
	}, nil
}

// SSEToken implements auth.AuthService.
func (s *AuthServiceImpl) SSEToken(ctx context.Context) (auth.SSETokenResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.SSETokenResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	staffID, _ := claims["staff_id"].(string)
	companyID, _ := claims["company_id"].(string)
	if staffID == "" || companyID == "" {
		return auth.SSETokenResponse{}, auth.ErrInvalidToken
	}

	token, expiresIn, err := s.jwtService.GenerateSSEToken(staffID, companyID)
	if err != nil {
		return auth.SSETokenResponse{}, fmt.Errorf("failed to generate sse token: %w", err)
	}

	return auth.SSETokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
