package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medscribe/medscribe/internal/config"
	"github.com/medscribe/medscribe/internal/domain/druginfo"
	"github.com/medscribe/medscribe/internal/domain/ehr"
	"github.com/medscribe/medscribe/internal/domain/identity"
	"github.com/medscribe/medscribe/internal/domain/prescription"
	"github.com/medscribe/medscribe/internal/platform/auth"
	"github.com/medscribe/medscribe/internal/platform/db"
	"github.com/medscribe/medscribe/internal/platform/middleware"
)

var rootCmd = &cobra.Command{
	Use:   "medscribe-server",
	Short: "Medical practice documentation backend with EHR submission",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations()
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func runMigrations() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := db.NewMigrator(pool, cfg.MigrationsDir).Up(ctx)
	if err != nil {
		return err
	}
	logger.Info().Int("applied", n).Msg("migrations complete")
	return nil
}

// doctorDirectory adapts the identity service to the practitioner lookup
// the EHR pipeline needs.
type doctorDirectory struct {
	identities *identity.Service
}

func (d *doctorDirectory) PractitionerInfo(ctx context.Context, doctorID uuid.UUID) (ehr.PractitionerInfo, error) {
	doc, err := d.identities.GetByID(ctx, doctorID)
	if err != nil {
		return ehr.PractitionerInfo{}, err
	}
	return ehr.PractitionerInfo{
		Name:               doc.Name,
		RegistrationNumber: doc.RegistrationNumber,
		Degree:             doc.Degree,
	}, nil
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info().Msg("database pool established")

	issuer := auth.NewIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	identitySvc := identity.NewService(identity.NewRepo(pool), issuer)
	prescriptionSvc := prescription.NewService(prescription.NewRepo(pool))
	drugSvc := druginfo.NewService()

	ehrClient := ehr.NewClient()
	defer ehrClient.Close()
	ehrSvc := ehr.NewService(
		ehr.NewRepo(pool),
		ehrClient,
		ehr.NewBundleBuilder(),
		prescriptionSvc,
		&doctorDirectory{identities: identitySvc},
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	public := e.Group("/api")
	public.GET("/health", db.HealthHandler(pool))
	identity.NewHandler(identitySvc).RegisterPublicRoutes(public)

	protected := e.Group("/api", auth.Middleware(issuer))
	identity.NewHandler(identitySvc).RegisterRoutes(protected)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(protected)
	druginfo.NewHandler(drugSvc).RegisterRoutes(protected)
	ehr.NewHandler(ehrSvc).RegisterRoutes(protected)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
