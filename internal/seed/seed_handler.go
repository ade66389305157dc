package seed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

const maxDocumentBytes = 16 << 20

type Handler struct {
	service Service
	group   singleflight.Group
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Load runs one load with the posted seed document. Identical documents
// posted while a run is in flight share that run's result.
func (h *Handler) Load(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, apperror.CodeInvalidInput, "seed document too large", nil)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "failed to read request body", err.Error())
		return
	}

	sum := sha256.Sum256(body)
	key := hex.EncodeToString(sum[:])

	result, err, _ := h.group.Do(key, func() (any, error) {
		doc, err := DecodeDocument(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		// run dibagi ke semua pemanggil, jangan ikut batal saat klien pertama putus
		return h.service.Load(context.WithoutCancel(c.Request.Context()), doc)
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result.(LoadReport))
}
