package check

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"sprawdzacz/models"
	"sprawdzacz/pkg/db"
	"sprawdzacz/pkg/detector"
	"sprawdzacz/pkg/fetcher"
	"sprawdzacz/pkg/mailer"
	"sprawdzacz/pkg/report"
	"sprawdzacz/pkg/sheet"
)

// RunAction is the single-pass batch run: load rows, detect, reconcile,
// send one summary email. Exit codes: 0 normal, 2 store access failure
// (with a best-effort alert email), 3 summary send failure.
func RunAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := NewLogger(cfg.LogLevel, c.Bool("quiet"))

	if c.Bool("always-send") {
		cfg.AlwaysSend = true
	}
	dryRun := c.Bool("dry-run")

	// Mail problems are not fatal until something has to be sent.
	mail, mailErr := mailer.New(cfg)

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("store access failed", "error", err)
		if !dryRun {
			sendStoreFailureAlert(mail, mailErr, err, logger)
		}
		os.Exit(2)
	}
	defer store.Close()

	rows, err := store.ReadSeries()
	if err != nil {
		logger.Error("failed to read tracking rows", "error", err)
		if !dryRun {
			sendStoreFailureAlert(mail, mailErr, err, logger)
		}
		os.Exit(2)
	}
	logger.Info("loaded tracking rows", "count", len(rows), "backend", cfg.StoreBackend)

	checker := NewPageChecker(fetcher.NewFetcher(cfg.Cookies), detector.NewScanner())
	rec := NewReconciler(store, checker, logger, dryRun)
	rec.Run(rows)

	items := rec.Items()
	problems := rec.Problems()
	logger.Info("run finished", "new_episodes", len(items), "problems", len(problems))

	if !cfg.AlwaysSend && len(items) == 0 && len(problems) == 0 {
		logger.Info("nothing to report, skipping email")
		return nil
	}

	formatter := report.NewFormatter(cfg.EmailFormat)
	body, err := formatter.Format(items, problems)
	if err != nil {
		logger.Error("failed to render summary", "error", err)
		os.Exit(3)
	}

	if dryRun {
		fmt.Println(body)
		logger.Info("dry run, skipping email")
		return nil
	}

	if mailErr != nil {
		logger.Error("mail not configured", "error", mailErr)
		os.Exit(3)
	}
	if err := mail.Send(report.Subject, body, formatter.ContentType()); err != nil {
		// Store writes made during the loop stay in effect; only the
		// notification failed.
		logger.Error("failed to send summary email", "error", err)
		os.Exit(3)
	}
	logger.Info("summary email sent", "to", cfg.EmailTo)
	return nil
}

// NotifyTestAction sends a single test email so SMTP credentials can be
// verified without touching the store.
func NotifyTestAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mail, err := mailer.New(cfg)
	if err != nil {
		return err
	}
	if err := mail.Send("Sprawdzacz – test powiadomień", "Testowa wiadomość ze Sprawdzacza. Konfiguracja SMTP działa.", "text/plain"); err != nil {
		return err
	}
	fmt.Printf("Test email sent to %s\n", cfg.EmailTo)
	return nil
}

// NewLogger builds the run logger the same way for every command.
func NewLogger(level string, quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// openStore opens the configured tracking-store backend.
func openStore(cfg *models.Config, logger *slog.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return db.Open(cfg.StorePath)
	case "", "sheet":
		s, err := sheet.Open(cfg.SheetPath, cfg.Worksheet)
		if err != nil {
			return nil, err
		}
		if s.FellBack() {
			logger.Warn("worksheet not found, using first worksheet",
				"configured", cfg.Worksheet, "using", s.Worksheet())
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// sendStoreFailureAlert tries to tell the recipient that the store is
// unreachable. Best effort only; its own failure is logged and
// swallowed.
func sendStoreFailureAlert(mail *mailer.Mailer, mailErr error, cause error, logger *slog.Logger) {
	if mailErr != nil {
		logger.Error("cannot send store failure alert", "error", mailErr)
		return
	}
	body := fmt.Sprintf("Błąd dostępu do arkusza: %v", cause)
	if err := mail.Send(report.StoreFailureSubject, body, "text/plain"); err != nil {
		logger.Error("failed to send store failure alert", "error", err)
	}
}
