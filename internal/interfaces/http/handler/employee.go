package handler

import (
	"github.com/bizdash/backend/internal/application/employee"
	"github.com/bizdash/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employees, payroll and hourly shifts
type EmployeeHandler struct {
	BaseHandler
	employeeService *employee.EmployeeService
	shifts          *ledger.ShiftTracker
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *employee.EmployeeService, shifts *ledger.ShiftTracker) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, shifts: shifts}
}

// List godoc
// @ID           listEmployees
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        search query string false "Search over name, position, phone and email"
// @Success      200 {object} APIResponse[[]employee.EmployeeResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var filter employee.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	employees, err := h.employeeService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employees)
}

// GetByID godoc
// @ID           getEmployee
// @Summary      Get employee
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} APIResponse[employee.EmployeeResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "employee")
	if !ok {
		return
	}

	resp, err := h.employeeService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @ID           createEmployee
// @Summary      Create employee
// @Description  A monthly employee's salary is posted as an expense when created
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body employee.EmployeeRequest true "Employee"
// @Success      201 {object} APIResponse[employee.EmployeeResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}
	var req employee.EmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.employeeService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateEmployee
// @Summary      Update employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Param        request body employee.EmployeeRequest true "Employee"
// @Success      200 {object} APIResponse[employee.EmployeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "employee")
	if !ok {
		return
	}
	var req employee.EmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.employeeService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteEmployee
// @Summary      Delete employee
// @Tags         employees
// @Param        id path string true "Employee ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "employee")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Payroll godoc
// @ID           getPayroll
// @Summary      Payroll header
// @Description  Employee count and the total of monthly salaries
// @Tags         employees
// @Produce      json
// @Success      200 {object} APIResponse[employee.PayrollResponse]
// @Security     BearerAuth
// @Router       /employees/payroll [get]
func (h *EmployeeHandler) Payroll(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	resp, err := h.employeeService.Payroll(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// StartShift godoc
// @ID           startShift
// @Summary      Start shift
// @Description  Starts timing an hourly employee's shift
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      201 {object} APIResponse[ledger.ShiftResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id}/shift/start [post]
func (h *EmployeeHandler) StartShift(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "employee")
	if !ok {
		return
	}

	resp, err := h.shifts.Start(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// EndShift godoc
// @ID           endShift
// @Summary      End shift
// @Description  Ends the running shift and posts its earnings as a salary expense
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.ShiftEndResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id}/shift/end [post]
func (h *EmployeeHandler) EndShift(c *gin.Context) {
	ownerID, id, ok := h.OwnerAndID(c, "employee")
	if !ok {
		return
	}

	resp, err := h.shifts.End(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ActiveShifts godoc
// @ID           listActiveShifts
// @Summary      Running shifts
// @Tags         employees
// @Produce      json
// @Success      200 {object} APIResponse[[]ledger.ShiftResponse]
// @Security     BearerAuth
// @Router       /employees/shifts [get]
func (h *EmployeeHandler) ActiveShifts(c *gin.Context) {
	ownerID, ok := h.Owner(c)
	if !ok {
		return
	}

	shifts, err := h.shifts.Active(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shifts)
}
