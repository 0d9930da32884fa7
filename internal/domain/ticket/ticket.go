package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
)

var ErrEmpresaRequired = errors.New("empresa_id is required")

// Intake holds the descriptive fields collected by the request form.
type Intake struct {
	Requester    string
	Phone        string
	Department   string
	Sector       string
	Address      string
	Equipment    string
	Brand        string
	SerialNumber string
	Condition    string
	Description  string
}

// HistoryEntry is one append-only record of a status change or a note.
// Status is empty when only a note was recorded.
type HistoryEntry struct {
	Timestamp time.Time
	Status    vo.TicketStatus
	Note      *string
}

// Update is a partial change to a ticket's working fields.
type Update struct {
	Status   *vo.TicketStatus
	Solution *string
	Cost     *float64
}

func (u Update) IsEmpty() bool {
	return u.Status == nil && u.Solution == nil && u.Cost == nil
}

// HistoryEntry returns the entry recorded for u, or nil when only the cost
// changes.
func (u Update) HistoryEntry(at time.Time) *HistoryEntry {
	if u.Status == nil && u.Solution == nil {
		return nil
	}
	entry := &HistoryEntry{Timestamp: at, Note: u.Solution}
	if u.Status != nil {
		entry.Status = *u.Status
	}
	return entry
}

type Ticket struct {
	id        string
	empresaID string
	clientUID string
	intake    Intake
	urgent    bool
	status    vo.TicketStatus
	solution  *string
	cost      *float64
	history   []HistoryEntry
	createdAt time.Time
	updatedAt *time.Time
}

// NewTicket creates a ticket for empresaID. An empty status means
// StatusAwaiting; clientUID is empty for tickets opened without a caller.
func NewTicket(empresaID, clientUID string, intake Intake, urgent bool, status vo.TicketStatus, now time.Time) (*Ticket, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrEmpresaRequired
	}
	if status == "" {
		status = vo.StatusAwaiting
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		empresaID: empresaID,
		clientUID: clientUID,
		intake:    intake,
		urgent:    urgent,
		status:    status,
		history:   []HistoryEntry{},
		createdAt: now,
	}, nil
}

func ReconstructTicket(
	id string,
	empresaID string,
	clientUID string,
	intake Intake,
	urgent bool,
	status vo.TicketStatus,
	solution *string,
	cost *float64,
	history []HistoryEntry,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if empresaID == "" {
		return nil, ErrEmpresaRequired
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if history == nil {
		history = []HistoryEntry{}
	}

	return &Ticket{
		id:        id,
		empresaID: empresaID,
		clientUID: clientUID,
		intake:    intake,
		urgent:    urgent,
		status:    status,
		solution:  solution,
		cost:      cost,
		history:   history,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() string { return t.id }
func (t *Ticket) EmpresaID() string { return t.empresaID }
func (t *Ticket) ClientUID() string { return t.clientUID }
func (t *Ticket) Intake() Intake { return t.intake }
func (t *Ticket) Urgent() bool { return t.urgent }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Solution() *string { return t.solution }
func (t *Ticket) Cost() *float64 { return t.cost }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() *time.Time { return t.updatedAt }

func (t *Ticket) History() []HistoryEntry {
	out := make([]HistoryEntry, len(t.history))
	copy(out, t.history)
	return out
}

func (t *Ticket) SetID(id string) error {
	if t.id != "" {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == "" {
		return fmt.Errorf("ticket ID cannot be empty")
	}
	t.id = id
	return nil
}

// Apply merges u into the ticket, stamps updatedAt and appends the history
// entry u produces. It returns that entry, or nil when nothing was appended.
func (t *Ticket) Apply(u Update, at time.Time) *HistoryEntry {
	if u.IsEmpty() {
		return nil
	}
	if u.Status != nil {
		t.status = *u.Status
	}
	if u.Solution != nil {
		s := *u.Solution
		t.solution = &s
	}
	if u.Cost != nil {
		c := *u.Cost
		t.cost = &c
	}
	t.updatedAt = &at

	entry := u.HistoryEntry(at)
	if entry != nil {
		t.history = append(t.history, *entry)
	}
	return entry
}
