package ticket

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/back-informatica/chamados/internal/application/ticket/usecases"
	"github.com/back-informatica/chamados/internal/domain/ticket"
)

// CreateTicketRequest is the intake form shared by /api/chamados and
// /api/tickets. Unknown fields are ignored.
type CreateTicketRequest struct {
	EmpresaID   string    `json:"empresa_id"`
	Requester   string    `json:"requester" binding:"max=255"`
	Telefone    string    `json:"telefone" binding:"max=64"`
	Secretaria  string    `json:"secretaria" binding:"max=255"`
	Setor       string    `json:"setor" binding:"max=255"`
	Endereco    string    `json:"endereco" binding:"max=255"`
	Equipamento string    `json:"equipamento" binding:"max=255"`
	Marca       string    `json:"marca" binding:"max=255"`
	Serie       string    `json:"serie" binding:"max=255"`
	Condicao    string    `json:"condicao" binding:"max=255"`
	Descricao   string    `json:"descricao"`
	Urgente     LooseBool `json:"urgente"`
	Status      string    `json:"status"`
}

func (r *CreateTicketRequest) ToCommand(clientUID string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		EmpresaID: r.EmpresaID,
		ClientUID: clientUID,
		Intake: ticket.Intake{
			Requester:    r.Requester,
			Phone:        r.Telefone,
			Department:   r.Secretaria,
			Sector:       r.Setor,
			Address:      r.Endereco,
			Equipment:    r.Equipamento,
			Brand:        r.Marca,
			SerialNumber: r.Serie,
			Condition:    r.Condicao,
			Description:  r.Descricao,
		},
		Urgent: bool(r.Urgente),
		Status: r.Status,
	}
}

// UpdateTicketRequest carries the recognized PATCH fields; a JSON null is
// the same as leaving the field out.
type UpdateTicketRequest struct {
	NewStatus *string  `json:"new_status"`
	Solution  *string  `json:"solution"`
	Cost      *float64 `json:"cost"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:  ticketID,
		NewStatus: r.NewStatus,
		Solution:  r.Solution,
		Cost:      r.Cost,
	}
}

// LooseBool accepts JSON booleans, numbers and the usual string spellings.
// Any other non-empty string is true.
type LooseBool bool

var boolType = reflect.TypeOf(false)

var falseWords = map[string]bool{
	"": true, "false": true, "0": true, "no": true, "nao": true, "não": true, "off": true, "null": true,
}

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = false
	case bytes.Equal(data, []byte("true")):
		*b = true
	case bytes.Equal(data, []byte("false")):
		*b = false
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = LooseBool(!falseWords[strings.ToLower(strings.TrimSpace(s))])
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return &json.UnmarshalTypeError{Value: string(data), Type: boolType}
		}
		*b = n != 0
	}
	return nil
}
