package handlers

//go:generate mockgen -source=../../../usecase/freight_quote_usecase.go -destination=mocks/freight_quote_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/shipment_usecase.go -destination=mocks/shipment_usecase_mock.go -package=mocks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "fluxo_propostas/internal/adapter/http/dto/request"
	response "fluxo_propostas/internal/adapter/http/dto/response"
	"fluxo_propostas/internal/usecase"
)

// FreightHandler covers the last two steps of the pipeline: quoting and sending.
type FreightHandler struct {
	quotes    usecase.IFreightQuoteUseCase
	shipments usecase.IShipmentUseCase
}

func NewFreightHandler(quotes usecase.IFreightQuoteUseCase, shipments usecase.IShipmentUseCase) *FreightHandler {
	return &FreightHandler{quotes: quotes, shipments: shipments}
}

// RegisterQuotes
//
//	@Summary	Register carrier quotes
//	@Tags		freight
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"proposal id"
//	@Param		payload	body		request.RegisterQuotesRequest	true	"quotes"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/proposals/{id}/quotes [post]
func (h *FreightHandler) RegisterQuotes(c *gin.Context) {
	var payload request.RegisterQuotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	proposal, err := h.quotes.RegisterQuotes(c.Request.Context(), c.Param("id"), payload.ToInput(), payload.Complete)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// SelectQuote
//
//	@Summary	Select the winning quote
//	@Tags		freight
//	@Produce	json
//	@Param		id			path		string	true	"proposal id"
//	@Param		quote_id	path		string	true	"quote id"
//	@Success	200			{object}	response.ProposalResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/proposals/{id}/quotes/{quote_id}/select [patch]
func (h *FreightHandler) SelectQuote(c *gin.Context) {
	proposal, err := h.quotes.SelectQuote(c.Request.Context(), c.Param("id"), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// RegisterShipment records that the proposal was sent to the client.
//
//	@Summary	Register the shipment to the client
//	@Tags		freight
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"proposal id"
//	@Param		payload	body		request.ShipmentRequest	true	"shipment"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/proposals/{id}/shipment [post]
func (h *FreightHandler) RegisterShipment(c *gin.Context) {
	var payload request.ShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	proposal, err := h.shipments.RegisterShipment(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}
