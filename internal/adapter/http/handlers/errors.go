package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxo_propostas/internal/usecase"
	"fluxo_propostas/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapProposalError translates use case sentinels into API errors.
func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidExternalID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidProposalInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSimulation), errors.Is(err, usecase.ErrNoUsableVolume):
		return pkg.NewDomainErrorSimple("INVALID_SIMULATION", "Invalid simulation data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotInProposal):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_IN_PROPOSAL", "Product does not belong to the proposal", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuote):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", "Invalid freight quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipment):
		return pkg.NewDomainErrorSimple("INVALID_SHIPMENT", "Invalid shipment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBoxNotFound):
		return pkg.NewDomainErrorSimple("BOX_NOT_FOUND", "Box not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarrierNotFound):
		return pkg.NewDomainErrorSimple("CARRIER_NOT_FOUND", "Carrier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Freight quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrImportLock):
		return pkg.NewDomainErrorSimple("IMPORT_IN_PROGRESS", "Another import of this order is in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
