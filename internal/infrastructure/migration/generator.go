package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/back-informatica/chamados/internal/shared/logger"
)

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9_]+`)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a generator writing into scriptsPath, normally the
// source directory that gets embedded on the next build.
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes an empty goose script and returns its path.
func (g *Generator) CreateMigration(name string) (string, error) {
	slug := strings.Trim(unsafeNameChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return "", fmt.Errorf("invalid migration name %q", name)
	}

	g.logger.Infow("creating new migration", "name", slug)

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	ts := g.now().UTC()
	fileName := fmt.Sprintf("%s_%s.sql", ts.Format("20060102150405"), slug)
	filePath := filepath.Join(g.scriptsPath, fileName)

	if err := os.WriteFile(filePath, []byte(g.template(slug, ts)), 0o644); err != nil {
		return "", fmt.Errorf("failed to create migration file: %w", err)
	}

	g.logger.Infow("migration file created successfully", "file", filePath)
	return filePath, nil
}

func (g *Generator) template(name string, ts time.Time) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
-- Keep statements portable across mysql, postgres and sqlite.

-- +goose Up

-- +goose Down
`, name, ts.Format(time.DateTime))
}
