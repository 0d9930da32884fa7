package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/back-informatica/chamados/internal/infrastructure/config"
	"github.com/back-informatica/chamados/internal/infrastructure/platform"
	"github.com/back-informatica/chamados/internal/infrastructure/telemetry"
	httpRouter "github.com/back-informatica/chamados/internal/interfaces/http"
	"github.com/back-informatica/chamados/internal/shared/constants"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/utils"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the chamados HTTP API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Bring the SQL schema up to date on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}
	utils.RegisterValidators()

	ctx := context.Background()
	shutdownTracing := telemetry.Setup(ctx, &cfg.Telemetry, log.Named("telemetry"))

	// A degraded backend still serves /health and answers 500 elsewhere.
	backend := platform.New(ctx, cfg, log, platform.Options{AutoMigrate: autoMigrate})

	container := httpRouter.NewContainer(backend, cfg, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      otelhttp.NewHandler(container.Engine(), cfg.Telemetry.ServiceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		log.Infow("shutting down server...")
	case err := <-serveErr:
		if err != nil {
			log.Errorw("failed to start server", "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		runErr = errors.Join(runErr, err)
	}
	if err := container.Shutdown(shutdownCtx); err != nil {
		log.Errorw("failed to release http components", "error", err)
	}
	if err := backend.Close(shutdownCtx); err != nil {
		log.Errorw("failed to close backend", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warnw("failed to flush traces", "error", err)
	}

	if runErr == nil {
		log.Infow("server exited gracefully")
	}
	return runErr
}

// MapEnvToGinMode turns an environment name into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", constants.ModeRelease:
		return constants.ModeRelease
	case "test", "testing":
		return constants.ModeTest
	default:
		return constants.ModeDebug
	}
}
