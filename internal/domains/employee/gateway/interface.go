package gateway

import (
	"context"

	"employee-facade/internal/domains/employee/model"
)

// EmployeeGateway is the only component that talks to the upstream employee API.
// Every failure it returns is a *model.EmployeeError.
type EmployeeGateway interface {
	FetchAll(ctx context.Context) ([]model.Employee, error)
	FetchByID(ctx context.Context, id string) (*model.Employee, error)
	Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error)
	DeleteByName(ctx context.Context, name string) error
}
