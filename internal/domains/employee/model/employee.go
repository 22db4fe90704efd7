package model

import "strings"

// Employee is the record owned by the upstream service.
// The same JSON keys are used on the upstream wire and on the façade's responses.
type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"employee_name"`
	Salary int    `json:"employee_salary"`
	Age    int    `json:"employee_age"`
	Title  string `json:"employee_title"`
	Email  string `json:"employee_email"`
}

// Complete reports whether all six fields are populated; salary and age must be positive.
func (e Employee) Complete() bool {
	return strings.TrimSpace(e.ID) != "" &&
		strings.TrimSpace(e.Name) != "" &&
		e.Salary > 0 &&
		e.Age > 0 &&
		strings.TrimSpace(e.Title) != "" &&
		strings.TrimSpace(e.Email) != ""
}

// CreateEmployeeRequest DTO for POST /employee.
// id and email are assigned by the upstream service.
type CreateEmployeeRequest struct {
	Name   string `json:"name"`
	Salary int    `json:"salary"`
	Age    int    `json:"age"`
	Title  string `json:"title"`
}

// ========================================
// UPSTREAM ENVELOPES
// ========================================

// ListEnvelope wraps GET {collection}.
type ListEnvelope struct {
	Status string     `json:"status"`
	Data   []Employee `json:"data"`
}

// SingleEnvelope wraps GET {collection}/{id} and POST {collection}.
type SingleEnvelope struct {
	Status string    `json:"status"`
	Data   *Employee `json:"data"`
}

// DeleteEnvelope wraps DELETE {collection}. Data is the upstream "deleted" flag.
type DeleteEnvelope struct {
	Status string `json:"status"`
	Data   *bool  `json:"data"`
}

// DeleteByNameRequest is the upstream delete payload; the upstream deletes by name, not id.
type DeleteByNameRequest struct {
	Name string `json:"name"`
}
