package valueobjects

import "fmt"

// TicketStatus is the closed set of ticket states. The value is the label
// shown to and sent by clients.
type TicketStatus string

const (
	StatusAwaiting  TicketStatus = "Aguardando Atendimento"
	StatusOpen      TicketStatus = "Aberto"
	StatusPending   TicketStatus = "Pendente"
	StatusCompleted TicketStatus = "Concluído"
	StatusCancelled TicketStatus = "Cancelado"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusAwaiting:  true,
	StatusOpen:      true,
	StatusPending:   true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// AllStatuses lists the states in lifecycle order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusAwaiting, StatusOpen, StatusPending, StatusCompleted, StatusCancelled}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

// ParseTicketStatus accepts an exact label or any spelling known to the
// legacy table ("concluido", "PENDENTE", "em andamento", ...). Unknown
// input is an error.
func ParseTicketStatus(s string) (TicketStatus, error) {
	if ts := TicketStatus(s); ts.IsValid() {
		return ts, nil
	}
	if ts, ok := legacyTable[normalizeKey(s)]; ok {
		return ts, nil
	}
	return "", fmt.Errorf("invalid ticket status: %q", s)
}
