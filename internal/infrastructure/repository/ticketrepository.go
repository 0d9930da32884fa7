package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/infrastructure/persistence/mappers"
	"github.com/back-informatica/chamados/internal/infrastructure/persistence/models"
	"github.com/back-informatica/chamados/internal/shared/db"
	"github.com/back-informatica/chamados/internal/shared/id"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// TicketRepository stores tickets in a SQL database through gorm.
type TicketRepository struct {
	txm    *db.TransactionManager
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(gdb *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		txm:    db.NewTransactionManager(gdb),
		mapper: mappers.NewTicketMapper(logger),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if t.ID() == "" {
		ticketID, err := id.NewTicketID()
		if err != nil {
			return err
		}
		if err := t.SetID(ticketID); err != nil {
			return err
		}
	}

	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	if err := r.txm.GetTx(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.txm.GetTx(ctx).Where("id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	var rows []models.TicketModel
	query := applyTicketFilter(r.txm.GetTx(ctx).Model(&models.TicketModel{}), filter).
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			r.logger.Warnw("skipping unreadable ticket", "ticket_id", rows[i].ID, "error", err)
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) Count(ctx context.Context, filter ticket.Filter) (int64, error) {
	var n int64
	query := applyTicketFilter(r.txm.GetTx(ctx).Model(&models.TicketModel{}), filter)
	if err := query.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return n, nil
}

// ApplyUpdate locks the row, writes the changed columns and rewrites the
// history column with the new entry appended, all in one transaction.
func (r *TicketRepository) ApplyUpdate(ctx context.Context, ticketID string, u ticket.Update, at time.Time) error {
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := r.txm.GetTx(ctx)

		var model models.TicketModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ticketID).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.ErrTicketNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock ticket: %w", err)
		}

		updates := map[string]any{"updated_at": at.UnixMilli()}
		if u.Status != nil {
			updates["status"] = u.Status.String()
		}
		if u.Solution != nil {
			updates["solution"] = *u.Solution
		}
		if u.Cost != nil {
			updates["cost"] = *u.Cost
		}

		if entry := u.HistoryEntry(at); entry != nil {
			history, err := mappers.AppendHistory(model.History, *entry)
			if err != nil {
				return err
			}
			updates["history"] = history
		}

		if err := tx.Model(&models.TicketModel{}).Where("id = ?", ticketID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
}

// NormalizeLegacy rewrites stored status values outside the closed set to
// their canonical label, so status filters and counts see legacy rows.
func (r *TicketRepository) NormalizeLegacy(ctx context.Context) (int64, error) {
	var rewritten int64
	err := r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := r.txm.GetTx(ctx)

		var stored []string
		if err := tx.Model(&models.TicketModel{}).Distinct().Pluck("status", &stored).Error; err != nil {
			return fmt.Errorf("failed to read ticket statuses: %w", err)
		}

		for _, raw := range stored {
			status, _ := vo.FromStored(raw)
			if status.String() == raw {
				continue
			}
			result := tx.Model(&models.TicketModel{}).Where("status = ?", raw).Update("status", status.String())
			if result.Error != nil {
				return fmt.Errorf("failed to normalize ticket status %q: %w", raw, result.Error)
			}
			r.logger.Infow("normalized legacy ticket status", "from", raw, "to", status.String(), "rows", result.RowsAffected)
			rewritten += result.RowsAffected
		}
		return nil
	})
	return rewritten, err
}

func applyTicketFilter(query *gorm.DB, filter ticket.Filter) *gorm.DB {
	if filter.EmpresaID != nil {
		query = query.Where("empresa_id = ?", *filter.EmpresaID)
	}
	if filter.ClientUID != nil {
		query = query.Where("client_uid = ?", *filter.ClientUID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	return query
}
