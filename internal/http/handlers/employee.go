package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/response"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/services"
)

type EmployeeHandler struct {
	employees services.EmployeeService
}

func NewEmployeeHandler(employees services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	rows, err := h.employees.List(dbctx.From(c.Request.Context()))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employees": rows})
}

// GET /api/employees/search?q=
func (h *EmployeeHandler) Search(c *gin.Context) {
	rows, err := h.employees.Search(dbctx.From(c.Request.Context()), c.Query("q"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employees": rows})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emp, err := h.employees.Get(dbctx.From(c.Request.Context()), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employee": emp})
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var in services.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	emp, err := h.employees.Create(dbctx.From(c.Request.Context()), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"employee": emp})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	emp, err := h.employees.Update(dbctx.From(c.Request.Context()), id, in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employee": emp})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.employees.Delete(dbctx.From(c.Request.Context()), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
