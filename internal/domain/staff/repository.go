package staff

import "context"

// StaffRepository defines data access for staff records and wage profiles.
type StaffRepository interface {
	// GetByID retrieves one staff member with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Staff, error)

	// GetByCode retrieves one staff member by their punch code (login path,
	// no company claim available yet)
	GetByCode(ctx context.Context, code string) (Staff, error)

	// ListActiveByCompany retrieves every active staff member of a company
	ListActiveByCompany(ctx context.Context, companyID string) ([]Staff, error)

	// UpdateWageProfile persists the payroll-relevant attributes
	UpdateWageProfile(ctx context.Context, s Staff) error

	// ListCompanyIDs returns the companies that have active staff.
	// Used by the dashboard refresh job, which runs outside a request.
	ListCompanyIDs(ctx context.Context) ([]string, error)
}

// StaffService exposes wage-profile administration.
type StaffService interface {
	List(ctx context.Context) ([]WageProfileResponse, error)
	GetWageProfile(ctx context.Context, staffID string) (WageProfileResponse, error)
	UpdateWageProfile(ctx context.Context, req UpdateWageProfileRequest) (WageProfileResponse, error)
}
