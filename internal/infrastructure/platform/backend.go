// Package platform assembles the store and identity backend once at process
// start. A missing or broken credential never fails the process: the backend
// is returned in a degraded state whose every operation reports
// backend_unavailable.
package platform

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/back-informatica/chamados/internal/domain/identity"
	"github.com/back-informatica/chamados/internal/domain/ticket"
	"github.com/back-informatica/chamados/internal/domain/user"
	"github.com/back-informatica/chamados/internal/infrastructure/auth"
	"github.com/back-informatica/chamados/internal/infrastructure/config"
	"github.com/back-informatica/chamados/internal/infrastructure/database"
	"github.com/back-informatica/chamados/internal/infrastructure/migration"
	"github.com/back-informatica/chamados/internal/infrastructure/mongodb"
	"github.com/back-informatica/chamados/internal/infrastructure/repository"
	sharedConfig "github.com/back-informatica/chamados/internal/shared/config"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

var errNoCredential = errors.New("no service account credential configured")

type Options struct {
	// AutoMigrate brings the SQL schema up to date before serving.
	AutoMigrate bool
}

// Backend is the store accessor handed to every use case.
type Backend struct {
	Tickets  ticket.Repository
	Users    user.Repository
	Verifier identity.Verifier
	Issuer   identity.Issuer

	driver  string
	sqlDB   *gorm.DB
	closers []func(context.Context) error
	err     error
}

// New never returns nil. Check Available or Err to learn whether it came up.
func New(ctx context.Context, cfg *config.Config, log logger.Interface, opts Options) *Backend {
	log = log.With("component", "platform")

	b, err := open(ctx, cfg, log, opts)
	if err != nil {
		log.Errorw("backend not initialized, store endpoints will answer 500", "error", err)
		return Unavailable(err)
	}

	log.Infow("backend initialized", "driver", b.driver)
	return b
}

// Unavailable builds a degraded backend that remembers cause.
func Unavailable(cause error) *Backend {
	return &Backend{
		Tickets:  unavailableTickets{},
		Users:    unavailableUsers{},
		Verifier: unavailableIdentity{},
		Issuer:   unavailableIdentity{},
		err:      cause,
	}
}

func open(ctx context.Context, cfg *config.Config, log logger.Interface, opts Options) (*Backend, error) {
	blob, err := cfg.Platform.CredentialJSON()
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, errNoCredential
	}

	sa, err := auth.ParseServiceAccount(blob)
	if err != nil {
		return nil, err
	}
	tokens := auth.NewIDTokenService(sa, cfg.Platform.ProjectID, cfg.Platform.TokenIssuer, cfg.Platform.TokenTTL())

	b, err := OpenStore(ctx, cfg, log, opts)
	if err != nil {
		return nil, err
	}
	b.Verifier = tokens
	b.Issuer = tokens
	return b, nil
}

// OpenStore connects only the ticket and user stores. The identity services
// of the returned backend report backend_unavailable. Provisioning commands
// use it since they never verify or issue tokens.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Interface, opts Options) (*Backend, error) {
	b := &Backend{
		Verifier: unavailableIdentity{},
		Issuer:   unavailableIdentity{},
		driver:   cfg.Database.Driver,
	}

	var err error
	if cfg.Database.IsSQL() {
		err = b.openSQL(&cfg.Database, cfg.Server.Mode, log, opts)
	} else {
		err = b.openMongo(ctx, &cfg.Database, log)
	}
	if err != nil {
		_ = b.Close(context.Background())
		return nil, err
	}
	b.normalizeLegacy(ctx, log)
	return b, nil
}

type legacyNormalizer interface {
	NormalizeLegacy(ctx context.Context) (int64, error)
}

// normalizeLegacy brings rows written before the status set was closed onto
// canonical values. Failure leaves the store usable and is only logged.
func (b *Backend) normalizeLegacy(ctx context.Context, log logger.Interface) {
	n, ok := b.Tickets.(legacyNormalizer)
	if !ok {
		return
	}
	changed, err := n.NormalizeLegacy(ctx)
	if err != nil {
		log.Warnw("failed to normalize legacy tickets", "error", err)
		return
	}
	if changed > 0 {
		log.Infow("normalized legacy tickets", "count", changed)
	}
}

func (b *Backend) openSQL(cfg *sharedConfig.DatabaseConfig, mode string, log logger.Interface, opts Options) error {
	gdb, err := database.Open(cfg)
	if err != nil {
		return err
	}
	b.sqlDB = gdb
	b.closers = append(b.closers, func(context.Context) error { return database.Close(gdb) })

	if opts.AutoMigrate {
		m, err := migration.NewManager(mode, cfg.Driver, log)
		if err != nil {
			return err
		}
		if err := m.Migrate(gdb); err != nil {
			return err
		}
	}

	b.Tickets = repository.NewTicketRepository(gdb, log.Named("tickets"))
	b.Users = repository.NewUserRepository(gdb, log.Named("users"))
	return nil
}

func (b *Backend) openMongo(ctx context.Context, cfg *sharedConfig.DatabaseConfig, log logger.Interface) error {
	client, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	b.closers = append(b.closers, client.Close)

	if err := mongodb.EnsureIndexes(ctx, client.Database()); err != nil {
		return fmt.Errorf("failed to ensure mongo indexes: %w", err)
	}

	b.Tickets = mongodb.NewTicketRepository(client.Database(), log.Named("tickets"))
	b.Users = mongodb.NewUserRepository(client.Database())
	return nil
}

func (b *Backend) Available() bool {
	return b.err == nil
}

// Err is the startup failure, nil when the backend is up.
func (b *Backend) Err() error {
	return b.err
}

func (b *Backend) Driver() string {
	return b.driver
}

// SQL returns the gorm handle, nil for the document store or a degraded backend.
func (b *Backend) SQL() *gorm.DB {
	return b.sqlDB
}

func (b *Backend) Close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
