package handlers

//go:generate mockgen -source=../../../usecase/simulation_usecase.go -destination=mocks/simulation_usecase_mock.go -package=mocks

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	request "fluxo_propostas/internal/adapter/http/dto/request"
	response "fluxo_propostas/internal/adapter/http/dto/response"
	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase"
)

// SimulationHandler exposes the warehouse steps that measure a proposal.
type SimulationHandler struct {
	usecase usecase.ISimulationUseCase
}

func NewSimulationHandler(uc usecase.ISimulationUseCase) *SimulationHandler {
	return &SimulationHandler{usecase: uc}
}

// SaveManualSimulation
//
//	@Summary	Save a manual simulation
//	@Tags		simulations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"proposal id"
//	@Param		payload	body		request.ManualSimulationRequest	true	"simulation"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/proposals/{id}/simulations/manual [post]
func (h *SimulationHandler) SaveManualSimulation(c *gin.Context) {
	var payload request.ManualSimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, "manual", func() (entities.Proposal, error) {
		return h.usecase.SaveManualSimulation(c.Request.Context(), c.Param("id"), payload.ToInput())
	})
}

// SimulateByMeasurements
//
//	@Summary	Simulate from product measurements
//	@Tags		simulations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"proposal id"
//	@Param		payload	body		request.MeasurementsRequest	true	"measurements"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/proposals/{id}/simulations/measurements [post]
func (h *SimulationHandler) SimulateByMeasurements(c *gin.Context) {
	var payload request.MeasurementsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, "measurements", func() (entities.Proposal, error) {
		return h.usecase.SimulateByMeasurements(c.Request.Context(), c.Param("id"), payload.ToInput(), payload.VolumeManualM3)
	})
}

// SimulateByVolumes
//
//	@Summary	Simulate from boxes and free volumes
//	@Tags		simulations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"proposal id"
//	@Param		payload	body		request.VolumesRequest	true	"volumes"
//	@Success	200		{object}	response.ProposalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/proposals/{id}/simulations/volumes [post]
func (h *SimulationHandler) SimulateByVolumes(c *gin.Context) {
	var payload request.VolumesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, "volumes", func() (entities.Proposal, error) {
		return h.usecase.SimulateByVolumes(c.Request.Context(), c.Param("id"), payload.ToInput())
	})
}

// AdjustMeasurements
//
//	@Summary	Adjust the manual volume or the weight
//	@Tags		simulations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"proposal id"
//	@Param		payload	body		request.AdjustMeasurementsRequest	true	"values"
//	@Success	200		{object}	response.ProposalResponse
//	@Router		/proposals/{id}/measurements [patch]
func (h *SimulationHandler) AdjustMeasurements(c *gin.Context) {
	var payload request.AdjustMeasurementsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, "adjust", func() (entities.Proposal, error) {
		return h.usecase.AdjustMeasurements(c.Request.Context(), c.Param("id"), payload.VolumeManualM3, payload.WeightKg)
	})
}

// Recalculate
//
//	@Summary	Recompute an automatic simulation from the catalog
//	@Tags		simulations
//	@Produce	json
//	@Param		id	path		string	true	"proposal id"
//	@Success	200	{object}	response.ProposalResponse
//	@Router		/proposals/{id}/recalculate [post]
func (h *SimulationHandler) Recalculate(c *gin.Context) {
	h.respond(c, "recalculate", func() (entities.Proposal, error) {
		return h.usecase.Recalculate(c.Request.Context(), c.Param("id"))
	})
}

func (h *SimulationHandler) respond(c *gin.Context, op string, run func() (entities.Proposal, error)) {
	proposal, err := run()
	if err != nil {
		slog.WarnContext(c.Request.Context(), "[simulation][handler] "+op+" failed", "proposal_id", c.Param("id"), "err", err)
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}
