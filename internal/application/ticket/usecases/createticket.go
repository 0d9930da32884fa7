package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/back-informatica/chamados/internal/application/ticket/dto"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type CreateTicketCommand struct {
	EmpresaID string
	// ClientUID is set on the authenticated route; the caller's profile then
	// supplies EmpresaID when it is empty.
	ClientUID string
	Intake    ticket.Intake
	Urgent    bool
	Status    string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
	now        func() time.Time
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	var status vo.TicketStatus
	if s := strings.TrimSpace(cmd.Status); s != "" {
		parsed, err := vo.ParseTicketStatus(s)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", s)
		}
		status = parsed
	}

	empresaID := strings.TrimSpace(cmd.EmpresaID)
	if empresaID == "" && cmd.ClientUID != "" {
		id, err := uc.profileEmpresa(ctx, cmd.ClientUID)
		if err != nil {
			return nil, err
		}
		empresaID = id
	}

	t, err := ticket.NewTicket(empresaID, cmd.ClientUID, cmd.Intake, cmd.Urgent, status, uc.now())
	if err != nil {
		if stderrors.Is(err, ticket.ErrEmpresaRequired) {
			return nil, errors.NewValidationError("empresa_id is required")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		return nil, errors.FromStore(uc.logger, "failed to create ticket", err, "empresa_id", empresaID)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"empresa_id", t.EmpresaID(),
		"client_uid", t.ClientUID(),
		"urgent", t.Urgent(),
	)

	return dto.ToTicketDTO(t), nil
}

func (uc *CreateTicketUseCase) profileEmpresa(ctx context.Context, uid string) (string, error) {
	if uc.userRepo == nil {
		return "", nil
	}
	u, err := uc.userRepo.GetByID(ctx, uid)
	if stderrors.Is(err, user.ErrUserNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.FromStore(uc.logger, "failed to load caller profile", err, "client_uid", uid)
	}
	return u.EmpresaID(), nil
}
