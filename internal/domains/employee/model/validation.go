package model

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AgeBounds is the inclusive age range a layer accepts on create. Max == 0 means no upper bound.
type AgeBounds struct {
	Min int
	Max int
}

var (
	// GatewayAgeBounds is enforced right before the upstream POST.
	GatewayAgeBounds = AgeBounds{Min: 16, Max: 75}

	// ServiceAgeBounds is the looser bound the service applies before delegating.
	ServiceAgeBounds = AgeBounds{Min: 1}
)

func (b AgeBounds) rules() []validation.Rule {
	msg := "employee age must be greater than zero"
	if b.Max > 0 {
		msg = fmt.Sprintf("employee age must be between %d and %d", b.Min, b.Max)
	}

	rules := []validation.Rule{
		validation.Required.Error(msg),
		validation.Min(b.Min).Error(msg),
	}
	if b.Max > 0 {
		rules = append(rules, validation.Max(b.Max).Error(msg))
	}
	return rules
}

// ValidateCreate is the single create-request policy shared by the service and the gateway.
// Name and title are checked after trimming; the request itself is not modified.
func ValidateCreate(req CreateEmployeeRequest, bounds AgeBounds) error {
	trimmed := CreateEmployeeRequest{
		Name:   strings.TrimSpace(req.Name),
		Salary: req.Salary,
		Age:    req.Age,
		Title:  strings.TrimSpace(req.Title),
	}

	err := validation.ValidateStruct(&trimmed,
		validation.Field(&trimmed.Name,
			validation.Required.Error("employee name must not be null or empty"),
		),
		validation.Field(&trimmed.Salary,
			validation.Required.Error("employee salary must be greater than zero"),
			validation.Min(1).Error("employee salary must be greater than zero"),
		),
		validation.Field(&trimmed.Age, bounds.rules()...),
		validation.Field(&trimmed.Title,
			validation.Required.Error("employee title must not be null or empty"),
		),
	)
	if err != nil {
		return &EmployeeError{Kind: KindInvalidArgument, Message: err.Error(), Err: err}
	}
	return nil
}

// RequireNonBlank rejects empty and whitespace-only identifiers, names and queries.
func RequireNonBlank(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return NewBlankField(field)
	}
	return nil
}
