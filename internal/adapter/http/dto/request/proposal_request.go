package request

import (
	"strings"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase"
	"fluxo_propostas/internal/usecase/interfaces"
)

// CreateProposalRequest opens a proposal typed in by a seller.
type CreateProposalRequest struct {
	Client   ClientRequest `json:"client"`
	SellerID int64         `json:"seller_id"`
	Items    []ItemRequest `json:"items" binding:"required,min=1"`
	Note     string        `json:"note"`
}

func (r CreateProposalRequest) ToInput() usecase.CreateProposalInput {
	return usecase.CreateProposalInput{
		Client:   r.Client.toImportClient(),
		SellerID: r.SellerID,
		Items:    toImportItems(r.Items),
		Note:     r.Note,
	}
}

type ListProposalsQuery struct {
	Status string `form:"status"`
	Origin string `form:"origin"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (q ListProposalsQuery) ToFilter() interfaces.ProposalFilter {
	return interfaces.ProposalFilter{
		Status: entities.ProposalStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		Origin: entities.ProposalOrigin(strings.ToUpper(strings.TrimSpace(q.Origin))),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}

type CancelProposalRequest struct {
	Note string `json:"note"`
}
