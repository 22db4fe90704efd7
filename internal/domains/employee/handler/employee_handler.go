package handler

import (
	"net/http"

	"employee-facade/internal/domains/employee/model"
	"employee-facade/internal/domains/employee/service"
	"employee-facade/internal/shared/response"
	"employee-facade/pkg/logger"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler serves the façade routes. Success bodies are written bare
// (employee, list, integer, plain-text name); failures use the shared error envelope.
type EmployeeHandler struct {
	service service.ServiceInterface
}

func NewEmployeeHandler(svc service.ServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		service: svc,
	}
}

func (h *EmployeeHandler) handleError(c *gin.Context, op string, err error) {
	status, message, code := model.GetErrorResponse(err)

	log := logger.FromContext(c.Request.Context())
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("operation", op).Str("code", code).Msg("Employee request failed")

	response.ErrorResponse(c, status, code, message)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /employee
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) ListAll(c *gin.Context) {
	employees, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, "list_all", err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /employee/search/:searchString
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) SearchByName(c *gin.Context) {
	employees, err := h.service.SearchByName(c.Request.Context(), c.Param("searchString"))
	if err != nil {
		h.handleError(c, "search_by_name", err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /employee/:id
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employee, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get_by_id", err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ════════════════════════════════════════════════════════════════
// AGGREGATES: GET /employee/highestSalary
//             GET /employee/topTenHighestEarningEmployeeNames
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) HighestSalary(c *gin.Context) {
	salary, err := h.service.HighestSalary(c.Request.Context())
	if err != nil {
		h.handleError(c, "highest_salary", err)
		return
	}

	c.JSON(http.StatusOK, salary)
}

func (h *EmployeeHandler) TopTenHighestEarningEmployeeNames(c *gin.Context) {
	names, err := h.service.TopEarningNames(c.Request.Context(), service.DefaultTopEarnersLimit)
	if err != nil {
		h.handleError(c, "top_earning_names", err)
		return
	}

	c.JSON(http.StatusOK, names)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /employee
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /employee/:id
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) DeleteByID(c *gin.Context) {
	name, err := h.service.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "delete_by_id", err)
		return
	}

	c.String(http.StatusOK, name)
}

// RegisterRoutes mounts the employee routes on r.
func (h *EmployeeHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/employee", h.ListAll)
	r.GET("/employee/search/:searchString", h.SearchByName)
	r.GET("/employee/highestSalary", h.HighestSalary)
	r.GET("/employee/topTenHighestEarningEmployeeNames", h.TopTenHighestEarningEmployeeNames)
	r.GET("/employee/:id", h.GetByID)
	r.POST("/employee", h.Create)
	r.DELETE("/employee/:id", h.DeleteByID)
}
