package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/siteforge/siteforge/internal/catalog"
	"github.com/siteforge/siteforge/internal/config"
	"github.com/siteforge/siteforge/internal/database"
	"github.com/siteforge/siteforge/internal/database/repository"
	"github.com/siteforge/siteforge/internal/intent"
	"github.com/siteforge/siteforge/internal/service"
	"github.com/siteforge/siteforge/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	logger := newLogger(cfg.Database.Path)
	defer logger.Sync()

	tpl, ok := catalog.ForIndustry(catalog.Industry(cfg.Site.Industry))
	if !ok {
		log.Fatalf("unknown industry %q (have %v)", cfg.Site.Industry, catalog.Industries())
	}

	subRepo := repository.NewSubmissionRepo(db)
	executor := &service.SubmissionExecutor{Submissions: subRepo, Log: logger}
	resolver := intent.NewResolver(intent.WithFallbackRoute(cfg.Site.FallbackRoute))
	bus := intent.NewBus()

	app := tui.New(ctx, cfg, tpl, subRepo)
	ctrl := intent.NewController(intent.Deps{
		Resolver:  resolver,
		Executor:  executor,
		Navigator: app,
		Scroller:  app,
		Notifier:  app,
		Dialogs:   app,
	}, intent.WithLogger(logger), intent.WithBus(bus))
	defer ctrl.Close()
	app.Attach(ctrl, bus)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// newLogger writes structured logs next to the database so the preview
// terminal stays clean. Falls back to a nop logger if the file can't be
// created.
func newLogger(dbPath string) *zap.Logger {
	logPath := filepath.Join(filepath.Dir(dbPath), "siteforge.log")
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{logPath}
	zcfg.ErrorOutputPaths = []string{logPath}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
