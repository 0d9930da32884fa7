package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/application/ticket/dto"
	"github.com/back-informatica/chamados/internal/application/ticket/usecases"
	"github.com/back-informatica/chamados/internal/interfaces/http/middleware"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		logger:         logger,
	}
}

type ChamadoResponse struct {
	Chamado *dto.TicketDTO `json:"chamado"`
}

type ChamadoListResponse struct {
	Count    int              `json:"count"`
	Chamados []*dto.TicketDTO `json:"chamados"`
}

type TicketListResponse struct {
	Count   int              `json:"count"`
	Tickets []*dto.TicketDTO `json:"tickets"`
}

type UpdateTicketResponse struct {
	TicketID string `json:"ticket_id"`
}

// CreateChamado handles POST /api/chamados
func (h *TicketHandler) CreateChamado(c *gin.Context) {
	result, ok := h.create(c, "")
	if !ok {
		return
	}
	utils.CreatedResponse(c, ChamadoResponse{Chamado: result}, "ticket created")
}

// CreateTicket handles POST /api/tickets; the ticket belongs to the caller.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	result, ok := h.create(c, middleware.GetClientUID(c))
	if !ok {
		return
	}
	utils.CreatedResponse(c, result, "ticket created")
}

func (h *TicketHandler) create(c *gin.Context, clientUID string) (*dto.TicketDTO, bool) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return nil, false
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(clientUID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, false
	}
	return result, true
}

// ListChamados handles GET /api/chamados
func (h *TicketHandler) ListChamados(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		EmpresaID: c.Query("empresa_id"),
		Status:    c.Query("status"),
		Limit:     utils.ParseLimitQuery(c, usecases.DefaultOrgListLimit, usecases.MaxListLimit),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ChamadoListResponse{Count: result.Count, Chamados: result.Tickets})
}

// ListTickets handles GET /api/tickets, scoped to the caller.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		ClientUID: middleware.GetClientUID(c),
		OwnOnly:   true,
		Status:    c.Query("status"),
		Limit:     utils.ParseLimitQuery(c, usecases.DefaultOwnListLimit, usecases.MaxListLimit),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TicketListResponse{Count: result.Count, Tickets: result.Tickets})
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "ticket updated"
	if !result.Updated {
		message = "nothing to update"
	}
	utils.SuccessResponse(c, http.StatusOK, message, UpdateTicketResponse{TicketID: result.TicketID})
}
