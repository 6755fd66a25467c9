package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `
	id, company_id, code, name, role, pin_hash,
	hourly_wage, dependents, tax_category, allowances, deductions,
	is_active, created_at, updated_at
`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.Role, &s.PINHash,
		&s.HourlyWage, &s.Dependents, &s.TaxCategory, &s.Allowances, &s.Deductions,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string, companyID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE id = $1
		  AND company_id = $2
	`

	s, err := scanStaff(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return s, nil
}

// GetByCode implements staff.StaffRepository.
func (r *staffRepository) GetByCode(ctx context.Context, code string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE code = $1
	`

	s, err := scanStaff(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by code: %w", err)
	}

	return s, nil
}

// ListActiveByCompany implements staff.StaffRepository.
func (r *staffRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE company_id = $1
		  AND is_active = true
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staffList := make([]staff.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staffList = append(staffList, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff: %w", err)
	}

	return staffList, nil
}

// UpdateWageProfile implements staff.StaffRepository.
// Allowance and deduction lines are stored as JSONB documents; they are
// small bounded lists read back as a whole, never queried by element.
func (r *staffRepository) UpdateWageProfile(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET hourly_wage = $1,
		    dependents = $2,
		    tax_category = $3,
		    allowances = $4,
		    deductions = $5,
		    updated_at = now()
		WHERE id = $6
		  AND company_id = $7
	`

	tag, err := q.Exec(ctx, query,
		s.HourlyWage,
		s.Dependents,
		s.TaxCategory,
		s.Allowances,
		s.Deductions,
		s.ID,
		s.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wage profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// ListCompanyIDs implements staff.StaffRepository.
func (r *staffRepository) ListCompanyIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT company_id
		FROM staff
		WHERE is_active = true
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list company ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate company ids: %w", err)
	}

	return ids, nil
}
