package handlers

//go:generate mockgen -source=../../../usecase/proposal_usecase.go -destination=mocks/proposal_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/lifecycle_usecase.go -destination=mocks/lifecycle_usecase_mock.go -package=mocks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "fluxo_propostas/internal/adapter/http/dto/request"
	response "fluxo_propostas/internal/adapter/http/dto/response"
	"fluxo_propostas/internal/usecase"
)

type ProposalHandler struct {
	proposals usecase.IProposalUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewProposalHandler(proposals usecase.IProposalUseCase, lifecycle usecase.ILifecycleUseCase) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, lifecycle: lifecycle}
}

// CreateProposal opens a manual proposal.
//
//	@Summary	Create a manual proposal
//	@Tags		proposals
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreateProposalRequest	true	"proposal"
//	@Success	201		{object}	response.ProposalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	proposal, err := h.proposals.CreateManual(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// ListProposals
//
//	@Summary	List proposals
//	@Tags		proposals
//	@Produce	json
//	@Param		status	query		string	false	"status filter"
//	@Param		origin	query		string	false	"MANUAL or EXTERNAL"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"page offset"
//	@Success	200		{array}		response.ProposalResponse
//	@Router		/proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var query request.ListProposalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	proposals, err := h.proposals.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// GetProposal
//
//	@Summary	Get a proposal
//	@Tags		proposals
//	@Produce	json
//	@Param		id	path		string	true	"proposal id"
//	@Success	200	{object}	response.ProposalResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.proposals.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// GetHistory returns the status transitions of a proposal, oldest first.
//
//	@Summary	Proposal status history
//	@Tags		proposals
//	@Produce	json
//	@Param		id	path		string	true	"proposal id"
//	@Success	200	{array}		response.HistoryEntryResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/proposals/{id}/history [get]
func (h *ProposalHandler) GetHistory(c *gin.Context) {
	entries, err := h.lifecycle.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromHistory(entries))
}

// CancelProposal
//
//	@Summary	Cancel a proposal
//	@Tags		proposals
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"proposal id"
//	@Param		payload	body		request.CancelProposalRequest	false	"cancellation note"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/proposals/{id}/cancel [patch]
func (h *ProposalHandler) CancelProposal(c *gin.Context) {
	var payload request.CancelProposalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}

	proposal, err := h.lifecycle.Cancel(c.Request.Context(), c.Param("id"), payload.Note)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}
