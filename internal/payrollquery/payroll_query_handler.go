package payrollquery

import (
	"fmt"
	"net/http"

	"school-payroll/internal/middleware"
	"school-payroll/internal/salaryperiod"
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

func (h *Handler) ListForAdmin(c *gin.Context) {
	var q AdminListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}
	q = q.normalize()

	views, total, err := h.service.ListForAdmin(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, views, &meta)
}

func (h *Handler) GetPeriod(c *gin.Context) {
	key, err := salaryperiod.ParsePeriodKey(c.Param("staff_id"), c.Param("year"), c.Param("month"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	view, err := h.service.GetPeriod(c.Request.Context(), key)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	view, err := h.service.ListForStaff(c.Request.Context(), middleware.StaffID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) MyPayslip(c *gin.Context) {
	key, err := salaryperiod.ParsePeriodKey(middleware.StaffID(c), c.Param("year"), c.Param("month"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	pdf, err := h.service.Payslip(c.Request.Context(), key)
	if err != nil {
		response.FromError(c, err)
		return
	}

	filename := fmt.Sprintf("payslip-%04d-%02d.pdf", key.Year, key.Month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
