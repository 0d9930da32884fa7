package mongodb

import (
	"time"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/domain/user"
	uservo "github.com/back-informatica/chamados/internal/domain/user/valueobjects"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type historyDocument struct {
	Timestamp time.Time `bson:"timestamp"`
	Status    string    `bson:"status,omitempty"`
	Note      *string   `bson:"note,omitempty"`
}

type ticketDocument struct {
	ID          string            `bson:"_id"`
	EmpresaID   string            `bson:"empresa_id"`
	ClientUID   string            `bson:"client_uid,omitempty"`
	Requester   string            `bson:"requester"`
	Telefone    string            `bson:"telefone"`
	Secretaria  string            `bson:"secretaria"`
	Setor       string            `bson:"setor"`
	Endereco    string            `bson:"endereco"`
	Equipamento string            `bson:"equipamento"`
	Marca       string            `bson:"marca"`
	Serie       string            `bson:"serie"`
	Condicao    string            `bson:"condicao"`
	Descricao   string            `bson:"descricao"`
	Urgente     bool              `bson:"urgente"`
	Status      string            `bson:"status"`
	Solution    *string           `bson:"solution,omitempty"`
	Cost        *float64          `bson:"cost,omitempty"`
	History     []historyDocument `bson:"history"`
	CreatedAt   time.Time         `bson:"created_at"`
	UpdatedAt   *time.Time        `bson:"updated_at,omitempty"`
}

func toHistoryDocument(e ticket.HistoryEntry) historyDocument {
	return historyDocument{Timestamp: e.Timestamp.UTC(), Status: e.Status.String(), Note: e.Note}
}

func toTicketDocument(t *ticket.Ticket) *ticketDocument {
	in := t.Intake()
	history := make([]historyDocument, 0, len(t.History()))
	for _, e := range t.History() {
		history = append(history, toHistoryDocument(e))
	}
	return &ticketDocument{
		ID:          t.ID(),
		EmpresaID:   t.EmpresaID(),
		ClientUID:   t.ClientUID(),
		Requester:   in.Requester,
		Telefone:    in.Phone,
		Secretaria:  in.Department,
		Setor:       in.Sector,
		Endereco:    in.Address,
		Equipamento: in.Equipment,
		Marca:       in.Brand,
		Serie:       in.SerialNumber,
		Condicao:    in.Condition,
		Descricao:   in.Description,
		Urgente:     t.Urgent(),
		Status:      t.Status().String(),
		Solution:    t.Solution(),
		Cost:        t.Cost(),
		History:     history,
		CreatedAt:   t.CreatedAt().UTC(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// toTicket maps stored statuses through the legacy table and logs the ones
// that needed the fallback rule.
func (d *ticketDocument) toTicket(log logger.Interface) (*ticket.Ticket, error) {
	mapStatus := func(stored string) vo.TicketStatus {
		status, exact := vo.FromStored(stored)
		if !exact {
			log.Warnw("unrecognized stored ticket status", "ticket_id", d.ID, "stored", stored, "mapped", status)
		}
		return status
	}

	history := make([]ticket.HistoryEntry, 0, len(d.History))
	for _, h := range d.History {
		entry := ticket.HistoryEntry{Timestamp: h.Timestamp.UTC(), Note: h.Note}
		if h.Status != "" {
			entry.Status = mapStatus(h.Status)
		}
		history = append(history, entry)
	}

	var updatedAt *time.Time
	if d.UpdatedAt != nil {
		u := d.UpdatedAt.UTC()
		updatedAt = &u
	}

	return ticket.ReconstructTicket(
		d.ID,
		d.EmpresaID,
		d.ClientUID,
		ticket.Intake{
			Requester:    d.Requester,
			Phone:        d.Telefone,
			Department:   d.Secretaria,
			Sector:       d.Setor,
			Address:      d.Endereco,
			Equipment:    d.Equipamento,
			Brand:        d.Marca,
			SerialNumber: d.Serie,
			Condition:    d.Condicao,
			Description:  d.Descricao,
		},
		d.Urgente,
		mapStatus(d.Status),
		d.Solution,
		d.Cost,
		history,
		d.CreatedAt.UTC(),
		updatedAt,
	)
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name,omitempty"`
	Username     string    `bson:"username,omitempty"`
	Email        string    `bson:"email"`
	Role         string    `bson:"role"`
	EmpresaID    string    `bson:"empresa_id,omitempty"`
	Status       string    `bson:"status,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toUserDocument(u *user.User) *userDocument {
	return &userDocument{
		ID:           u.ID(),
		Name:         u.Name(),
		Username:     u.Username(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		EmpresaID:    u.EmpresaID(),
		Status:       u.Status().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UTC(),
		UpdatedAt:    u.UpdatedAt().UTC(),
	}
}

func (d *userDocument) toUser() (*user.User, error) {
	status, err := uservo.NewStatus(d.Status)
	if err != nil {
		status = uservo.StatusActive
	}
	return user.ReconstructUser(
		d.ID,
		d.Name,
		d.Username,
		d.Email,
		uservo.Role(d.Role),
		d.EmpresaID,
		status,
		d.PasswordHash,
		d.CreatedAt.UTC(),
		d.UpdatedAt.UTC(),
	)
}
