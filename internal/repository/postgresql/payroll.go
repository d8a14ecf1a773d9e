package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year,
	p.basic_salary, p.hra, p.da, p.ta, p.medical_allowance, p.other_allowances,
	p.pf, p.tax, p.insurance, p.other_deductions,
	p.gross_salary, p.net_salary, p.status,
	p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year,
		&p.BasicSalary, &p.HRA, &p.DA, &p.TA, &p.MedicalAllowance, &p.OtherAllowances,
		&p.PF, &p.Tax, &p.Insurance, &p.OtherDeductions,
		&p.GrossSalary, &p.NetSalary, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
// A unique-constraint violation on (employee_id, month, year) is returned
// unwrapped inside the error chain so the service can map 23505.
func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			employee_id, month, year,
			basic_salary, hra, da, ta, medical_allowance, other_allowances,
			pf, tax, insurance, other_deductions,
			gross_salary, net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.Year,
		p.BasicSalary, p.HRA, p.DA, p.TA, p.MedicalAllowance, p.OtherAllowances,
		p.PF, p.Tax, p.Insurance, p.OtherDeductions,
		p.GrossSalary, p.NetSalary, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by ID: %w", err)
	}

	return p, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		  AND p.month = $2
		  AND p.year = $3
		LIMIT 1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No payroll for this period
		}
		return nil, fmt.Errorf("failed to get payroll by employee and period: %w", err)
	}

	return &p, nil
}

// GetLatestByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) GetLatestByEmployee(ctx context.Context, employeeID string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
		LIMIT 1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest payroll: %w", err)
	}

	return &p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM payrolls p WHERE p.month = $1 AND p.year = $2`
	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.Month, filter.Year).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.first_name
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, selectQuery, filter.Month, filter.Year, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, total, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls SET
			basic_salary = $1,
			hra = $2,
			da = $3,
			ta = $4,
			medical_allowance = $5,
			other_allowances = $6,
			pf = $7,
			tax = $8,
			insurance = $9,
			other_deductions = $10,
			gross_salary = $11,
			net_salary = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		p.BasicSalary, p.HRA, p.DA, p.TA, p.MedicalAllowance, p.OtherAllowances,
		p.PF, p.Tax, p.Insurance, p.OtherDeductions,
		p.GrossSalary, p.NetSalary, p.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to update payroll: %w", err)
	}

	return nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}
