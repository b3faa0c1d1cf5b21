package routes

import (
	"github.com/gin-gonic/gin"

	"fluxo_propostas/internal/adapter/http/handlers"
)

const (
	PathImports   = "/imports"
	PathProposals = "/proposals"
)

func addImportRoutes(rg *gin.RouterGroup, importHandler *handlers.ImportHandler) {
	rg.POST(PathImports, importHandler.ImportProposal)
}

func addProposalRoutes(rg *gin.RouterGroup, h Handlers) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", h.Proposal.CreateProposal)
		proposals.GET("", h.Proposal.ListProposals)
		proposals.GET("/:id", h.Proposal.GetProposal)
		proposals.GET("/:id/history", h.Proposal.GetHistory)
		proposals.PATCH("/:id/cancel", h.Proposal.CancelProposal)

		// Warehouse measurement steps.
		proposals.POST("/:id/simulations/manual", h.Simulation.SaveManualSimulation)
		proposals.POST("/:id/simulations/measurements", h.Simulation.SimulateByMeasurements)
		proposals.POST("/:id/simulations/volumes", h.Simulation.SimulateByVolumes)
		proposals.PATCH("/:id/measurements", h.Simulation.AdjustMeasurements)
		proposals.POST("/:id/recalculate", h.Simulation.Recalculate)

		proposals.POST("/:id/quotes", h.Freight.RegisterQuotes)
		proposals.PATCH("/:id/quotes/:quote_id/select", h.Freight.SelectQuote)
		proposals.POST("/:id/shipment", h.Freight.RegisterShipment)
	}
}
