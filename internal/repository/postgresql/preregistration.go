package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hr-admin-backend/internal/domain/preregistration"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
)

type preRegistrationRepository struct {
	db *database.DB
}

// Create implements preregistration.Repository.
func (p *preRegistrationRepository) Create(ctx context.Context, entry preregistration.PreRegisteredEmployee) (preregistration.PreRegisteredEmployee, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO pre_registered_employees (
			employee_code, email, first_name, last_name, department, designation, added_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_registered, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeCode, entry.Email, entry.FirstName, entry.LastName,
		entry.Department, entry.Designation, entry.AddedBy,
	).Scan(&entry.ID, &entry.IsRegistered, &entry.CreatedAt)
	if err != nil {
		return preregistration.PreRegisteredEmployee{}, fmt.Errorf("failed to create pre-registered employee: %w", err)
	}

	return entry, nil
}

// GetByID implements preregistration.Repository.
func (p *preRegistrationRepository) GetByID(ctx context.Context, id string) (preregistration.PreRegisteredEmployee, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_code, email, first_name, last_name,
			   department, designation, added_by, is_registered, created_at
		FROM pre_registered_employees
		WHERE id = $1
	`

	var entry preregistration.PreRegisteredEmployee
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeCode, &entry.Email, &entry.FirstName, &entry.LastName,
		&entry.Department, &entry.Designation, &entry.AddedBy, &entry.IsRegistered, &entry.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return preregistration.PreRegisteredEmployee{}, preregistration.ErrNotFound
		}
		return preregistration.PreRegisteredEmployee{}, fmt.Errorf("failed to get pre-registered employee: %w", err)
	}

	return entry, nil
}

// List implements preregistration.Repository.
func (p *preRegistrationRepository) List(ctx context.Context) ([]preregistration.PreRegisteredEmployee, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_code, email, first_name, last_name,
			   department, designation, added_by, is_registered, created_at
		FROM pre_registered_employees
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pre-registered employees: %w", err)
	}
	defer rows.Close()

	var entries []preregistration.PreRegisteredEmployee
	for rows.Next() {
		var entry preregistration.PreRegisteredEmployee
		err := rows.Scan(
			&entry.ID, &entry.EmployeeCode, &entry.Email, &entry.FirstName, &entry.LastName,
			&entry.Department, &entry.Designation, &entry.AddedBy, &entry.IsRegistered, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pre-registered employee: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ExistsByEmployeeCode implements preregistration.Repository.
func (p *preRegistrationRepository) ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, p.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pre_registered_employees WHERE employee_code = $1)`,
		employeeCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pre-registration by employee code: %w", err)
	}

	return exists, nil
}

// ExistsByEmail implements preregistration.Repository.
func (p *preRegistrationRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, p.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pre_registered_employees WHERE LOWER(email) = LOWER($1))`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pre-registration by email: %w", err)
	}

	return exists, nil
}

// Delete implements preregistration.Repository.
func (p *preRegistrationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM pre_registered_employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pre-registered employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return preregistration.ErrNotFound
	}

	return nil
}

func NewPreRegistrationRepository(db *database.DB) preregistration.Repository {
	return &preRegistrationRepository{db: db}
}
