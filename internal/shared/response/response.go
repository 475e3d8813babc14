package response

import (
	"school-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// ceil(total / limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Meta:  meta,
		Error: nil,
	})
}

// ErrorBody is the "error" member of a failed envelope. Kind tells clients
// whether retrying (infrastructure) or fixing the request makes sense.
type ErrorBody struct {
	Code    string        `json:"code"`
	Kind    apperror.Kind `json:"kind"`
	Message string        `json:"message"`
	Details any           `json:"details"`
}

func Error(c *gin.Context, status int, body ErrorBody) {
	c.JSON(status, ApiEnvelope{
		Ok:    false,
		Error: body,
	})
}

// FromError writes err through apperror.ToHTTP.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, ErrorBody{
		Code:    httpErr.Code,
		Kind:    httpErr.Kind,
		Message: httpErr.Message,
		Details: httpErr.Details,
	})
}

// AbortWithError writes err and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	FromError(c, err)
	c.Abort()
}
