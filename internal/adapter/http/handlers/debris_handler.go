package handlers

import (
	"errors"
	"net/http"

	request "restoration_billing/internal/adapter/http/dto/request"
	response "restoration_billing/internal/adapter/http/dto/response"
	"restoration_billing/internal/domain/debris"
	"restoration_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDebrisPayload = pkg.NewDomainErrorSimple("INVALID_DEBRIS_PAYLOAD", "Invalid debris payload", http.StatusBadRequest)
)

// DebrisHandler exposes the stateless debris-weight calculator.

type DebrisHandler struct{}

func NewDebrisHandler() *DebrisHandler {
	return &DebrisHandler{}
}

func (h *DebrisHandler) Calculate(c *gin.Context) {
	var payload request.DebrisCalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebrisPayload.HTTPStatus, errInvalidDebrisPayload.ToHTTPError())
		return
	}

	res, err := debris.Calculate(payload.ToEntries())
	if err != nil {
		appErr := mapDebrisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebrisResult(res))
}

func mapDebrisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, debris.ErrCategoryRequired),
		errors.Is(err, debris.ErrWeightInvalid),
		errors.Is(err, debris.ErrUnknownMoisture):
		return pkg.NewDomainErrorSimple("INVALID_DEBRIS_CONTENT", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
