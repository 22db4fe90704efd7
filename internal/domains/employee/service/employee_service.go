package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"employee-facade/internal/domains/employee/gateway"
	"employee-facade/internal/domains/employee/model"
	"employee-facade/pkg/logger"

	"golang.org/x/text/cases"
)

// employeeService implements ServiceInterface on top of the upstream gateway.
// It holds no mutable state; every call re-fetches from upstream.
type employeeService struct {
	gateway gateway.EmployeeGateway
}

func NewEmployeeService(gw gateway.EmployeeGateway) ServiceInterface {
	return &employeeService{gateway: gw}
}

// wrap lets domain errors through unchanged and turns everything else into a service failure.
func wrap(message string, err error) error {
	if model.IsDomainError(err) {
		return err
	}
	return model.NewServiceError(message, err)
}

func (s *employeeService) ListAll(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.gateway.FetchAll(ctx)
	if err != nil {
		return nil, wrap("Error fetching all employees", err)
	}

	logger.FromContext(ctx).Info().Int("count", len(employees)).Msg("Fetched all employees")
	return employees, nil
}

func (s *employeeService) SearchByName(ctx context.Context, query string) ([]model.Employee, error) {
	if err := model.RequireNonBlank(query, "Search string"); err != nil {
		return nil, err
	}

	employees, err := s.gateway.FetchAll(ctx)
	if err != nil {
		return nil, wrap("Error searching employees by name", err)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	matches := make([]model.Employee, 0)
	for _, e := range employees {
		if strings.Contains(fold.String(e.Name), needle) {
			matches = append(matches, e)
		}
	}

	logger.FromContext(ctx).Info().
		Str("query", query).
		Int("matches", len(matches)).
		Msg("Searched employees by name")
	return matches, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	if err := model.RequireNonBlank(id, "Employee ID"); err != nil {
		return nil, err
	}

	employee, err := s.gateway.FetchByID(ctx, id)
	if err != nil {
		return nil, wrap("Error fetching employee by id", err)
	}
	return employee, nil
}

func (s *employeeService) HighestSalary(ctx context.Context) (int, error) {
	employees, err := s.gateway.FetchAll(ctx)
	if err != nil {
		return 0, wrap("Error fetching highest salary", err)
	}
	if len(employees) == 0 {
		return 0, model.NewNoData("No employees found to determine highest salary")
	}

	highest := slices.MaxFunc(employees, func(a, b model.Employee) int {
		return cmp.Compare(a.Salary, b.Salary)
	})
	return highest.Salary, nil
}

func (s *employeeService) TopEarningNames(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, model.NewInvalidArgument("limit must be greater than zero")
	}

	employees, err := s.gateway.FetchAll(ctx)
	if err != nil {
		return nil, wrap("Error fetching top earning employees", err)
	}

	sorted := slices.Clone(employees)
	slices.SortStableFunc(sorted, func(a, b model.Employee) int {
		return cmp.Compare(b.Salary, a.Salary)
	})

	names := make([]string, 0, min(limit, len(sorted)))
	for _, e := range sorted[:min(limit, len(sorted))] {
		names = append(names, e.Name)
	}
	return names, nil
}

// Create applies ServiceAgeBounds; the gateway applies its own stricter bounds before the POST.
func (s *employeeService) Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error) {
	if err := model.ValidateCreate(req, model.ServiceAgeBounds); err != nil {
		return nil, err
	}

	employee, err := s.gateway.Create(ctx, req)
	if err != nil {
		return nil, wrap("Error creating employee", err)
	}

	logger.FromContext(ctx).Info().Str("employee_id", employee.ID).Msg("Employee created")
	return employee, nil
}

// DeleteByID is not atomic: the record can change between the lookup and the delete.
func (s *employeeService) DeleteByID(ctx context.Context, id string) (string, error) {
	employee, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.gateway.DeleteByName(ctx, employee.Name); err != nil {
		return "", wrap("Error deleting employee", err)
	}

	logger.FromContext(ctx).Info().
		Str("employee_id", id).
		Str("employee_name", employee.Name).
		Msg("Employee deleted")
	return employee.Name, nil
}
