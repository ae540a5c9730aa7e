package handlers

import (
	"context"
	"errors"
	"net/http"

	request "restoration_billing/internal/adapter/http/dto/request"
	response "restoration_billing/internal/adapter/http/dto/response"
	"restoration_billing/internal/domain/entities"
	"restoration_billing/internal/domain/estimate"
	"restoration_billing/internal/usecase"
	"restoration_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_PAYLOAD", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateDocumentHandler handles HTTP requests for estimate documents.
//
// All totals in responses are server-computed; the handler never echoes
// client-supplied derived figures.

type EstimateDocumentHandler struct {
	usecase usecase.IEstimateDocumentUseCase
}

func NewEstimateDocumentHandler(uc usecase.IEstimateDocumentUseCase) *EstimateDocumentHandler {
	return &EstimateDocumentHandler{usecase: uc}
}

func (h *EstimateDocumentHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.Create(c.Request.Context(), toContent(payload))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateDocument(doc))
}

func (h *EstimateDocumentHandler) GetEstimate(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

// ReplaceEstimate is the save contract: the full section/item content is
// swapped in and every derived figure recomputed.
func (h *EstimateDocumentHandler) ReplaceEstimate(c *gin.Context) {
	var payload request.EstimateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.ReplaceContent(c.Request.Context(), c.Param("id"), toContent(payload))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func (h *EstimateDocumentHandler) SendEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.SendByID)
}

func (h *EstimateDocumentHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.ApproveByID)
}

func (h *EstimateDocumentHandler) DeclineEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.DeclineByID)
}

func (h *EstimateDocumentHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EstimateDocumentHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.EstimateDocument, error),
) {
	doc, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func toContent(payload request.EstimateDocumentRequest) usecase.EstimateContent {
	return usecase.EstimateContent{
		Title:             payload.Title,
		Sections:          payload.ResolveSections(),
		Items:             payload.ResolveItems(),
		OPPercent:         payload.OPPercent,
		TaxMethod:         payload.ResolveTaxMethod(),
		TaxRate:           payload.TaxRate,
		SpecificTaxAmount: payload.SpecificTaxAmount,
	}
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, estimate.ErrSectionTitleRequired),
		errors.Is(err, estimate.ErrItemNameRequired),
		errors.Is(err, estimate.ErrItemUnitRequired),
		errors.Is(err, estimate.ErrItemQuantityInvalid),
		errors.Is(err, estimate.ErrItemUnitPriceInvalid),
		errors.Is(err, estimate.ErrInvalidTaxMethod):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_CONTENT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateTitle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
