package salaryperiod

import (
	"net/http"

	"school-payroll/internal/shared/apperror"
	"school-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func keyFromPath(c *gin.Context) (PeriodKey, error) {
	return ParsePeriodKey(c.Param("staff_id"), c.Param("year"), c.Param("month"))
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Adjust(c *gin.Context) {
	key, err := keyFromPath(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req AdjustSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Adjust(c.Request.Context(), key, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	key, err := keyFromPath(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.service.MarkPaid(c.Request.Context(), key)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
