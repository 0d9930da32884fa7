package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/back-informatica/chamados/internal/shared/constants"
	"github.com/back-informatica/chamados/internal/shared/logger"
)

// Manager runs the strategy chosen for a server mode.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses gorm AutoMigrate in debug mode and the goose scripts
// everywhere else.
func NewManager(mode, driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	if mode == constants.ModeDebug {
		strategy = NewGormAutoMigrateStrategy(log)
	} else {
		gs, err := NewGooseStrategy(driver, log)
		if err != nil {
			return nil, err
		}
		strategy = gs
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
