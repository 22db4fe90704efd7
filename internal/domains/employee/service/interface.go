package service

import (
	"context"

	"employee-facade/internal/domains/employee/model"
)

// DefaultTopEarnersLimit is the limit the HTTP boundary passes to TopEarningNames.
const DefaultTopEarnersLimit = 10

type ServiceInterface interface {
	// ListAll returns every employee in upstream order
	ListAll(ctx context.Context) ([]model.Employee, error)

	// SearchByName returns employees whose name contains query, ignoring case
	// Returns: empty (non-nil) slice when nothing matches
	SearchByName(ctx context.Context, query string) ([]model.Employee, error)

	GetByID(ctx context.Context, id string) (*model.Employee, error)

	// HighestSalary returns the maximum salary across all employees
	// Returns: NoData error when the upstream collection is empty
	HighestSalary(ctx context.Context) (int, error)

	// TopEarningNames returns up to limit names ordered by salary descending
	// Ties keep upstream order
	TopEarningNames(ctx context.Context, limit int) ([]string, error)

	Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error)

	// DeleteByID resolves the employee name by id, then deletes by name upstream
	// Returns: the deleted employee's name
	DeleteByID(ctx context.Context, id string) (string, error)
}
