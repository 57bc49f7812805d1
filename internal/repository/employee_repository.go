package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EmployeeRepository defines persistence access for employee records.
// Lookups return pgx.ErrNoRows when no record matches.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, email, password_hash, designation, role, address)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.PasswordHash,
		emp.Designation,
		emp.Role,
		emp.Address,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees
        SET name=$1, password_hash=$2, designation=$3, role=$4, address=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		emp.Name,
		emp.PasswordHash,
		emp.Designation,
		emp.Role,
		emp.Address,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM employees WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, name, email, password_hash, designation, role, address, created_at, updated_at
        FROM employees WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, name, email, password_hash, designation, role, address, created_at, updated_at
        FROM employees WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, name, email, password_hash, designation, role, address, created_at, updated_at
        FROM employees ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Email,
			&emp.PasswordHash,
			&emp.Designation,
			&emp.Role,
			&emp.Address,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) scanOne(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	if err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.PasswordHash,
		&emp.Designation,
		&emp.Role,
		&emp.Address,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
