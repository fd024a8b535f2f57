package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pharmacy/pharmacy/internal/config"
	"github.com/pharmacy/pharmacy/internal/domain/customer"
	"github.com/pharmacy/pharmacy/internal/domain/medicine"
	"github.com/pharmacy/pharmacy/internal/domain/order"
	"github.com/pharmacy/pharmacy/internal/domain/prescription"
	"github.com/pharmacy/pharmacy/internal/memstore"
	"github.com/pharmacy/pharmacy/internal/platform/db"
	"github.com/pharmacy/pharmacy/internal/platform/middleware"
	"github.com/pharmacy/pharmacy/internal/server"
	"github.com/pharmacy/pharmacy/migrations"
)

const (
	storePostgres = "postgres"
	storeMemory   = "memory"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "pharmacy-server",
		Short:        "Pharmacy operations API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the pharmacy API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := cmd.Flags().GetString("store")
			migrate, _ := cmd.Flags().GetBool("migrate")
			return runServer(store, migrate)
		},
	}
	cmd.Flags().String("store", storePostgres, "Persistence backend: postgres or memory")
	cmd.Flags().Bool("migrate", false, "Apply pending migrations before serving (postgres only)")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return withMigrator(cmd.Context(), dir, func(ctx context.Context, m *db.Migrator) error {
				count, err := m.Up(ctx)
				if err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", count)
				return nil
			})
		},
	}
	upCmd.Flags().String("dir", "", "Migrations directory (defaults to the embedded schema)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return withMigrator(cmd.Context(), dir, func(ctx context.Context, m *db.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}
				printStatus(cmd.OutOrStdout(), statuses)
				return nil
			})
		},
	}
	statusCmd.Flags().String("dir", "", "Migrations directory (defaults to the embedded schema)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func withMigrator(ctx context.Context, dir string, fn func(context.Context, *db.Migrator) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.MigrationsDir
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, db.NewMigrator(pool, migrationsFS(dir)))
}

// migrationsFS prefers an explicit directory over the embedded schema.
func migrationsFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func printStatus(w io.Writer, statuses []db.MigrationStatus) {
	fmt.Fprintf(w, "%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
	fmt.Fprintln(w, "---------- ---------------------------------------- ---------- --------------------")
	for _, s := range statuses {
		status := "pending"
		appliedAt := ""
		if s.Applied {
			status = "applied"
			if s.AppliedAt != nil {
				appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
		}
		fmt.Fprintf(w, "%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
	}
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	if cfg.IsDev() {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(out).With().Timestamp().Str("service", "pharmacy-server").Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}

func serverOptions(cfg *config.Config) server.Options {
	rl := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rl.RequestsPerSecond <= 0 {
		rl = middleware.DefaultRateLimitConfig()
	}
	return server.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit:      rl,
		RequestTimeout: cfg.RequestTimeout,
		BodyLimit:      cfg.BodyLimit,
	}
}

func runServer(store string, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := newLogger(cfg, os.Stdout)

	ctx := context.Background()

	var (
		stores server.Stores
		health echo.HandlerFunc
	)
	switch store {
	case storePostgres:
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")

		if migrate {
			n, err := db.NewMigrator(pool, migrationsFS(cfg.MigrationsDir)).Up(ctx)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info().Int("applied", n).Msg("migrations applied")
		}

		stores = server.Stores{
			Customers:     customer.NewRepoPG(pool),
			Prescriptions: prescription.NewRepoPG(pool),
			Orders:        order.NewRepoPG(pool),
			Medicines:     medicine.NewRepoPG(pool),
			Tx:            db.NewTxRunner(pool),
		}
		health = db.HealthHandler(pool, server.Version)
	case storeMemory:
		mem := memstore.New()
		stores = server.Stores{
			Customers:     mem.Customers(),
			Prescriptions: mem.Prescriptions(),
			Orders:        mem.Orders(),
			Medicines:     mem.Medicines(),
			Tx:            mem.TxRunner(),
		}
		health = server.StaticHealth(storeMemory)
		logger.Warn().Msg("using in-memory store; data is lost on exit")
	default:
		return fmt.Errorf("unknown store %q: must be %s or %s", store, storePostgres, storeMemory)
	}

	e := server.New(serverOptions(cfg), stores, health, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("store", store).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
