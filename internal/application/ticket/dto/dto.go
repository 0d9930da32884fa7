package dto

import (
	"time"

	"github.com/back-informatica/chamados/internal/domain/ticket"
)

// TicketDTO is the JSON shape of a ticket in create and list responses.
type TicketDTO struct {
	ID          string   `json:"id"`
	EmpresaID   string   `json:"empresa_id"`
	ClientUID   string   `json:"client_uid,omitempty"`
	Requester   string   `json:"requester"`
	Telefone    string   `json:"telefone"`
	Secretaria  string   `json:"secretaria"`
	Setor       string   `json:"setor"`
	Endereco    string   `json:"endereco"`
	Equipamento string   `json:"equipamento"`
	Marca       string   `json:"marca"`
	Serie       string   `json:"serie"`
	Condicao    string   `json:"condicao"`
	Descricao   string   `json:"descricao"`
	Urgente     bool     `json:"urgente"`
	Status      string   `json:"status"`
	Solution    *string  `json:"solution,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type HistoryEntryDTO struct {
	Timestamp string  `json:"timestamp"`
	Status    string  `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// TicketDetailDTO adds the history log and the rendered solution.
type TicketDetailDTO struct {
	TicketDTO
	History      []HistoryEntryDTO `json:"history"`
	SolutionHTML string            `json:"solution_html,omitempty"`
}

type ReportDTO struct {
	EmpresaID     string `json:"empresa_id"`
	TotalChamados int    `json:"total_chamados"`
	Pendentes     int    `json:"pendentes"`
	Concluidos    int    `json:"concluidos"`
	Urgentes      int    `json:"urgentes"`
}

type ChartSeriesDTO struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type DashboardDTO struct {
	TotalTickets     int64          `json:"total_tickets"`
	OpenTickets      int64          `json:"open_tickets"`
	ClosedTickets    int64          `json:"closed_tickets"`
	PendingTickets   int64          `json:"pending_tickets"`
	ChartPerformance ChartSeriesDTO `json:"chart_performance"`
}

// FormatTime renders t as RFC 3339 in UTC; the zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	in := t.Intake()
	out := &TicketDTO{
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
		CreatedAt:   FormatTime(t.CreatedAt()),
	}
	if u := t.UpdatedAt(); u != nil {
		out.UpdatedAt = FormatTime(*u)
	}
	return out
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t))
	}
	return out
}

func ToTicketDetailDTO(t *ticket.Ticket, solutionHTML string) *TicketDetailDTO {
	if t == nil {
		return nil
	}
	history := t.History()
	entries := make([]HistoryEntryDTO, 0, len(history))
	for _, h := range history {
		entries = append(entries, HistoryEntryDTO{
			Timestamp: FormatTime(h.Timestamp),
			Status:    h.Status.String(),
			Note:      h.Note,
		})
	}
	return &TicketDetailDTO{
		TicketDTO:    *ToTicketDTO(t),
		History:      entries,
		SolutionHTML: solutionHTML,
	}
}

func ToReportDTO(r ticket.Report) *ReportDTO {
	return &ReportDTO{
		EmpresaID:     r.EmpresaID,
		TotalChamados: r.Total,
		Pendentes:     r.Pending,
		Concluidos:    r.Completed,
		Urgentes:      r.Urgent,
	}
}
