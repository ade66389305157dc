package payroll

import (
	"net/http"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	schema SchemaService
}

func NewHandler(schema SchemaService) *Handler {
	return &Handler{schema: schema}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ComputeTotal(c *gin.Context) {
	var q TotalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	response.Success(c, http.StatusOK, TotalResponse{
		Base:    *q.Base,
		Bonus:   q.Bonus,
		Penalty: q.Penalty,
		Total:   ComputeTotal(*q.Base, q.Bonus, q.Penalty),
	})
}

func (h *Handler) ResetSchema(c *gin.Context) {
	var req ResetSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}
	if !*req.Confirm {
		h.writeError(c, payrollerrors.ErrResetNotConfirmed)
		return
	}

	if err := h.schema.Reset(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
