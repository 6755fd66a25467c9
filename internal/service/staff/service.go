package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/pkg/database"
)

type StaffServiceImpl struct {
	db        *database.DB
	staffRepo staff.StaffRepository
}

func NewStaffService(db *database.DB, staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{
		db:        db,
		staffRepo: staffRepo,
	}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context) ([]staff.WageProfileResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	staffList, err := s.staffRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	responses := make([]staff.WageProfileResponse, 0, len(staffList))
	for _, st := range staffList {
		responses = append(responses, staff.NewWageProfileResponse(st))
	}
	return responses, nil
}

// GetWageProfile implements staff.StaffService.
func (s *StaffServiceImpl) GetWageProfile(ctx context.Context, staffID string) (staff.WageProfileResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return staff.WageProfileResponse{}, err
	}

	st, err := s.staffRepo.GetByID(ctx, staffID, companyID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return staff.WageProfileResponse{}, staff.ErrStaffNotFound
		}
		return staff.WageProfileResponse{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return staff.NewWageProfileResponse(st), nil
}

// UpdateWageProfile implements staff.StaffService.
// Wage changes take effect from the next aggregation run; already exported
// months are not recomputed automatically.
func (s *StaffServiceImpl) UpdateWageProfile(ctx context.Context, req staff.UpdateWageProfileRequest) (staff.WageProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.WageProfileResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return staff.WageProfileResponse{}, err
	}

	st, err := s.staffRepo.GetByID(ctx, req.StaffID, companyID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return staff.WageProfileResponse{}, staff.ErrStaffNotFound
		}
		return staff.WageProfileResponse{}, fmt.Errorf("failed to get staff: %w", err)
	}

	if req.HourlyWage != nil {
		st.HourlyWage = *req.HourlyWage
	}
	if req.Dependents != nil {
		st.Dependents = *req.Dependents
	}
	if req.TaxCategory != nil {
		st.TaxCategory = staff.TaxCategory(*req.TaxCategory)
	}
	if req.Allowances != nil {
		st.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		st.Deductions = *req.Deductions
	}

	if err := s.staffRepo.UpdateWageProfile(ctx, st); err != nil {
		return staff.WageProfileResponse{}, fmt.Errorf("failed to update wage profile: %w", err)
	}

	return staff.NewWageProfileResponse(st), nil
}
