package models

import "gorm.io/datatypes"

// TicketModel is the row of the tickets table. History holds the JSON array
// of HistoryRecord values.
type TicketModel struct {
	ID           string         `gorm:"primaryKey;size:32"`
	EmpresaID    string         `gorm:"size:64;not null;index:idx_tickets_empresa_created,priority:1"`
	ClientUID    string         `gorm:"size:128;not null;default:'';index:idx_tickets_client_created,priority:1"`
	Requester    string         `gorm:"size:255;not null;default:''"`
	Phone        string         `gorm:"size:64;not null;default:''"`
	Department   string         `gorm:"size:255;not null;default:''"`
	Sector       string         `gorm:"size:255;not null;default:''"`
	Address      string         `gorm:"size:255;not null;default:''"`
	Equipment    string         `gorm:"size:255;not null;default:''"`
	Brand        string         `gorm:"size:255;not null;default:''"`
	SerialNumber string         `gorm:"size:255;not null;default:''"`
	Condition    string         `gorm:"column:equipment_condition;size:255;not null;default:''"`
	Description  string         `gorm:"type:text"`
	Urgent       bool           `gorm:"not null;default:false"`
	Status       string         `gorm:"size:64;not null;index"`
	Solution     *string        `gorm:"type:text"`
	Cost         *float64       `gorm:"type:double precision"`
	History      datatypes.JSON `gorm:"type:text;not null"`
	CreatedAt    int64          `gorm:"autoCreateTime:milli;not null;index:idx_tickets_empresa_created,priority:2;index:idx_tickets_client_created,priority:2"`
	UpdatedAt    *int64         `gorm:"autoUpdateTime:false"`

	// Note: No foreign key to users; client_uid may name a subject without a profile.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// HistoryRecord is one element of TicketModel.History.
type HistoryRecord struct {
	Timestamp string  `json:"timestamp"`
	Status    string  `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
}
