package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/infrastructure/persistence/models"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	// ToDomain maps stored statuses through the legacy table, logging values
	// that needed the fallback rule.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct {
	logger logger.Interface
}

func NewTicketMapper(logger logger.Interface) TicketMapper {
	return &TicketMapperImpl{logger: logger}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	in := t.Intake()
	model := &models.TicketModel{
		ID:           t.ID(),
		EmpresaID:    t.EmpresaID(),
		ClientUID:    t.ClientUID(),
		Requester:    in.Requester,
		Phone:        in.Phone,
		Department:   in.Department,
		Sector:       in.Sector,
		Address:      in.Address,
		Equipment:    in.Equipment,
		Brand:        in.Brand,
		SerialNumber: in.SerialNumber,
		Condition:    in.Condition,
		Description:  in.Description,
		Urgent:       t.Urgent(),
		Status:       t.Status().String(),
		Solution:     t.Solution(),
		Cost:         t.Cost(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
	}
	if u := t.UpdatedAt(); u != nil {
		ms := u.UnixMilli()
		model.UpdatedAt = &ms
	}

	history, err := EncodeHistory(t.History())
	if err != nil {
		return nil, err
	}
	model.History = history

	return model, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status := m.status(model.ID, model.Status)

	records, err := DecodeHistory(model.History)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", model.ID, err)
	}
	history := make([]ticket.HistoryEntry, 0, len(records))
	for _, r := range records {
		entry := ticket.HistoryEntry{Note: r.Note}
		if ts, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
			entry.Timestamp = ts.UTC()
		}
		if r.Status != "" {
			entry.Status = m.status(model.ID, r.Status)
		}
		history = append(history, entry)
	}

	var updatedAt *time.Time
	if model.UpdatedAt != nil {
		u := time.UnixMilli(*model.UpdatedAt).UTC()
		updatedAt = &u
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.EmpresaID,
		model.ClientUID,
		ticket.Intake{
			Requester:    model.Requester,
			Phone:        model.Phone,
			Department:   model.Department,
			Sector:       model.Sector,
			Address:      model.Address,
			Equipment:    model.Equipment,
			Brand:        model.Brand,
			SerialNumber: model.SerialNumber,
			Condition:    model.Condition,
			Description:  model.Description,
		},
		model.Urgent,
		status,
		model.Solution,
		model.Cost,
		history,
		time.UnixMilli(model.CreatedAt).UTC(),
		updatedAt,
	)
}

func (m *TicketMapperImpl) status(ticketID, stored string) vo.TicketStatus {
	status, exact := vo.FromStored(stored)
	if !exact && m.logger != nil {
		m.logger.Warnw("unrecognized stored ticket status", "ticket_id", ticketID, "stored", stored, "mapped", status)
	}
	return status
}

// EncodeHistory renders entries as the JSON array stored in the history column.
func EncodeHistory(entries []ticket.HistoryEntry) (datatypes.JSON, error) {
	records := make([]models.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, ToHistoryRecord(e))
	}
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket history: %w", err)
	}
	return datatypes.JSON(b), nil
}

// DecodeHistory parses the history column; an empty column is an empty log.
func DecodeHistory(raw datatypes.JSON) ([]models.HistoryRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var records []models.HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode ticket history: %w", err)
	}
	return records, nil
}

// AppendHistory returns raw with entry appended.
func AppendHistory(raw datatypes.JSON, entry ticket.HistoryEntry) (datatypes.JSON, error) {
	records, err := DecodeHistory(raw)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(append(records, ToHistoryRecord(entry)))
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket history: %w", err)
	}
	return datatypes.JSON(b), nil
}

func ToHistoryRecord(e ticket.HistoryEntry) models.HistoryRecord {
	return models.HistoryRecord{
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
		Status:    e.Status.String(),
		Note:      e.Note,
	}
}
