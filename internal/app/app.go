package app

import (
	"context"
	"fmt"

	"github.com/khrees2412/careerpivot/internal/archive"
	"github.com/khrees2412/careerpivot/internal/assessment"
	"github.com/khrees2412/careerpivot/internal/builder"
	"github.com/khrees2412/careerpivot/internal/catalog"
	"github.com/khrees2412/careerpivot/internal/collector"
	"github.com/khrees2412/careerpivot/internal/config"
	"github.com/khrees2412/careerpivot/internal/logger"
	"github.com/khrees2412/careerpivot/internal/notify"
)

// App is the dependency container shared by the CLI and the HTTP server
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	Catalog   *catalog.Catalog
	Collector *collector.Collector
	Archive   *archive.Archive
	Notifier  *notify.Notifier
	Service   *assessment.Service
}

// NewApp loads configuration and wires every component
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := logger.New(config.AppConfig.LogMode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(config.AppConfig, config.MailCredentials, notify.NewSMTPSender(config.AppConfig.SMTPHost, config.AppConfig.SMTPPort), log)
}

// New wires an App from explicit parts
func New(cfg *config.Config, creds notify.CredentialsFunc, sender notify.Sender, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config: %w", ErrInvalidArgument)
	}
	if cfg.ArchivePath == "" {
		return nil, fmt.Errorf("archive path: %w", ErrInvalidArgument)
	}
	if log == nil {
		log = logger.Nop()
	}

	cat := catalog.Default()
	coll := collector.New(cat)
	arc := archive.New(cfg.ArchivePath)
	notifier := notify.New(creds, sender, log)
	svc := assessment.NewService(coll, builder.New(cat), arc, notifier, cat, log)

	log.Debug("app initialized", "archive", arc.Path(), "smtp_host", cfg.SMTPHost)

	return &App{
		Config:    cfg,
		Log:       log,
		Catalog:   cat,
		Collector: coll,
		Archive:   arc,
		Notifier:  notifier,
		Service:   svc,
	}, nil
}

// Close flushes the logger
func (a *App) Close() error {
	if a.Log != nil {
		a.Log.Sync()
	}
	return nil
}
