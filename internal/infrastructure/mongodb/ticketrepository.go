package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/back-informatica/chamados/internal/domain/ticket"
	vo "github.com/back-informatica/chamados/internal/domain/ticket/valueobjects"
	"github.com/back-informatica/chamados/internal/shared/id"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

type TicketRepository struct {
	collection *mongo.Collection
	logger     logger.Interface
}

func NewTicketRepository(db *mongo.Database, logger logger.Interface) *TicketRepository {
	return &TicketRepository{collection: db.Collection(ticketsCollection), logger: logger}
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
	if _, err := r.collection.InsertOne(ctx, toTicketDocument(t)); err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var doc ticketDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": ticketID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ticket.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return doc.toTicket(r.logger)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, ticketFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	var docs []ticketDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(docs))
	for i := range docs {
		t, err := docs[i].toTicket(r.logger)
		if err != nil {
			r.logger.Warnw("skipping unreadable ticket", "ticket_id", docs[i].ID, "error", err)
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) Count(ctx context.Context, filter ticket.Filter) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, ticketFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return n, nil
}

// ApplyUpdate sets the changed fields and appends the history entry in a
// single pipeline update. A missing or null history is treated as empty.
// Client text goes through $literal so a leading "$" is never read as a
// field path.
func (r *TicketRepository) ApplyUpdate(ctx context.Context, ticketID string, u ticket.Update, at time.Time) error {
	set := bson.M{"updated_at": at.UTC()}
	if u.Status != nil {
		set["status"] = u.Status.String()
	}
	if u.Solution != nil {
		set["solution"] = bson.M{"$literal": *u.Solution}
	}
	if u.Cost != nil {
		set["cost"] = *u.Cost
	}
	if entry := u.HistoryEntry(at); entry != nil {
		set["history"] = bson.M{"$concatArrays": bson.A{
			bson.M{"$ifNull": bson.A{"$history", bson.A{}}},
			bson.M{"$literal": bson.A{toHistoryDocument(*entry)}},
		}}
	}

	update := mongo.Pipeline{{{Key: "$set", Value: set}}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": ticketID}, update)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	if result.MatchedCount == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

// NormalizeLegacy rewrites status values outside the closed set to their
// canonical label and replaces null or missing histories with an empty
// array. It returns the number of documents changed.
func (r *TicketRepository) NormalizeLegacy(ctx context.Context) (int64, error) {
	stored, err := r.collection.Distinct(ctx, "status", bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to read ticket statuses: %w", err)
	}

	var rewritten int64
	for _, v := range stored {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		status, _ := vo.FromStored(raw)
		if status.String() == raw {
			continue
		}
		result, err := r.collection.UpdateMany(ctx, bson.M{"status": raw}, bson.M{"$set": bson.M{"status": status.String()}})
		if err != nil {
			return rewritten, fmt.Errorf("failed to normalize ticket status %q: %w", raw, err)
		}
		r.logger.Infow("normalized legacy ticket status", "from", raw, "to", status.String(), "documents", result.ModifiedCount)
		rewritten += result.ModifiedCount
	}

	result, err := r.collection.UpdateMany(ctx,
		bson.M{"history": bson.M{"$not": bson.M{"$type": "array"}}},
		bson.M{"$set": bson.M{"history": bson.A{}}})
	if err != nil {
		return rewritten, fmt.Errorf("failed to normalize ticket histories: %w", err)
	}
	if result.ModifiedCount > 0 {
		r.logger.Infow("replaced null ticket histories", "documents", result.ModifiedCount)
	}
	return rewritten + result.ModifiedCount, nil
}

func ticketFilter(filter ticket.Filter) bson.M {
	m := bson.M{}
	if filter.EmpresaID != nil {
		m["empresa_id"] = *filter.EmpresaID
	}
	if filter.ClientUID != nil {
		m["client_uid"] = *filter.ClientUID
	}
	if filter.Status != nil {
		m["status"] = filter.Status.String()
	}
	return m
}
