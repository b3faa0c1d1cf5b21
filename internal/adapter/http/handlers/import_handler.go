package handlers

//go:generate mockgen -source=../../../usecase/import_usecase.go -destination=mocks/import_usecase_mock.go -package=mocks

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	request "fluxo_propostas/internal/adapter/http/dto/request"
	response "fluxo_propostas/internal/adapter/http/dto/response"
	"fluxo_propostas/internal/usecase"
)

// ImportHandler receives orders pushed by the external sales platform.
type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ImportProposal creates or reconciles the proposal of an external order.
//
//	@Summary	Import an external order
//	@Tags		imports
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.ImportRequest	true	"order payload"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/imports [post]
func (h *ImportHandler) ImportProposal(c *gin.Context) {
	var payload request.ImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	proposal, err := h.usecase.ImportProposal(c.Request.Context(), payload.ToPayload())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "[import][handler] import failed", "external_id", payload.ExternalID, "err", err)
		writeError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}
