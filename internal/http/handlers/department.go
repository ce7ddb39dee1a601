package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/response"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/services"
)

type DepartmentHandler struct {
	departments services.DepartmentService
}

func NewDepartmentHandler(departments services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

type departmentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *DepartmentHandler) List(c *gin.Context) {
	rows, err := h.departments.List(dbctx.From(c.Request.Context()))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"departments": rows})
}

func (h *DepartmentHandler) Search(c *gin.Context) {
	rows, err := h.departments.Search(dbctx.From(c.Request.Context()), c.Query("q"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"departments": rows})
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dept, err := h.departments.Get(dbctx.From(c.Request.Context()), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"department": dept})
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dept, err := h.departments.Create(dbctx.From(c.Request.Context()), req.Name)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"department": dept})
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dept, err := h.departments.Rename(dbctx.From(c.Request.Context()), id, req.Name)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"department": dept})
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.departments.Delete(dbctx.From(c.Request.Context()), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (h *DepartmentHandler) Employees(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.departments.Employees(dbctx.From(c.Request.Context()), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employees": rows})
}
