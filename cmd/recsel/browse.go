package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"recsel/internal/catalog"
	"recsel/internal/config"
	"recsel/internal/eventbus"
	"recsel/internal/export"
	"recsel/internal/logging"
	"recsel/internal/ui"
)

// BrowseCommand returns the interactive picker command.
func BrowseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Pick records from the catalog interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Catalog base URL (overrides config and RECSEL_BASE_URL)",
			},
			&cli.IntFlag{
				Name:  "page-size",
				Usage: "Records per page: 5, 10 or 20 (overrides config)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: ids, tsv or json (overrides config)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path (default: user config dir)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Log file path (default: recsel.log in the config dir)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Action: browseAction,
	}
}

func browseAction(c *cli.Context) error {
	bus := eventbus.New()
	defer bus.Close()

	var configSvc config.Service
	if path := c.String("config"); path != "" {
		configSvc = config.NewServiceAtPath(path, bus)
	} else {
		configSvc = config.NewServiceWithBus(bus)
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return cli.Exit(fmt.Sprintf("load config: %v", err), 1)
	}
	if err := applyBrowseFlags(c, cfg); err != nil {
		return err
	}

	// Resolve the output format up front so a typo fails before the TUI starts
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	// Stdout carries the TUI and the final selection, logs go to a file
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(config.Dir(), "recsel.log")
	}
	logger, err := logging.Setup(logging.Config{
		Level: logging.LogLevel(cfg.LogLevel),
		File:  logPath,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("set up logging: %v", err), 1)
	}

	clientCfg := catalog.DefaultConfig(cfg.BaseURL)
	clientCfg.Timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	client, err := catalog.NewClient(clientCfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("catalog client: %v", err), 1)
	}

	subscribeAudit(bus, logger)
	if cfg.UISettings.RememberPageSize {
		subscribeAutosave(bus, configSvc, cfg, logger)
	}

	model := ui.NewModel(bus, cfg, client)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Int("page_size", cfg.PageSize).
		Str("format", string(format)).
		Msg("starting browse")

	if _, err := p.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("run ui: %v", err), 1)
	}

	if model.Aborted() {
		logger.Info().Msg("session aborted")
		return cli.Exit("", 1)
	}

	selected := model.SelectedRecords()
	logger.Info().Int("selected", len(selected)).Msg("session finished")

	if err := export.Write(os.Stdout, selected, format); err != nil {
		return cli.Exit(fmt.Sprintf("write selection: %v", err), 1)
	}
	return nil
}

// applyBrowseFlags overlays command line flags onto the loaded config.
func applyBrowseFlags(c *cli.Context, cfg *config.Config) error {
	if v := c.String("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := c.Int("page-size"); v != 0 {
		if !config.ValidPageSize(v) {
			return cli.Exit(fmt.Sprintf("page size must be one of %v, got %d", config.PageSizes, v), 1)
		}
		cfg.PageSize = v
	}
	if v := c.String("format"); v != "" {
		cfg.Format = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// subscribeAudit writes every domain event to the log as an audit trail.
func subscribeAudit(bus eventbus.EventBus, logger zerolog.Logger) {
	audit := logger.With().Str("component", "audit").Logger()

	bus.Subscribe(eventbus.EventPageLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PageLoadedEvent); ok {
			audit.Info().
				Int("page", ev.PageNumber).
				Int("count", ev.Count).
				Int("total", ev.Total).
				Msg("page loaded")
		}
	})
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FetchFailedEvent); ok {
			audit.Warn().
				Err(ev.Err).
				Int("page", ev.PageNumber).
				Int("limit", ev.PageSize).
				Msg("fetch failed")
		}
	})
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
			audit.Debug().
				Int64("record", ev.RecordID).
				Bool("selected", ev.Selected).
				Int("count", ev.Count).
				Msg("selection changed")
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionClearedEvent); ok {
			audit.Info().Int("previous", ev.Previous).Msg("selection cleared")
		}
	})
	bus.Subscribe(eventbus.EventBulkSelectStarted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.BulkSelectStartedEvent); ok {
			audit.Info().Int("target", ev.Target).Msg("bulk select started")
		}
	})
	bus.Subscribe(eventbus.EventBulkSelectFinished, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.BulkSelectFinishedEvent); ok {
			audit.Info().
				Int("requested", ev.Requested).
				Int("selected", ev.Selected).
				Bool("exhausted", ev.Exhausted).
				Msg("bulk select finished")
		}
	})
	bus.Subscribe(eventbus.EventPageSizeChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PageSizeChangedEvent); ok {
			audit.Info().Int("from", ev.From).Int("to", ev.To).Msg("page size changed")
		}
	})
}

// subscribeAutosave persists page size changes back to the config file.
func subscribeAutosave(bus eventbus.EventBus, svc config.Service, cfg *config.Config, logger zerolog.Logger) {
	bus.Subscribe(eventbus.EventPageSizeChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.PageSizeChangedEvent)
		if !ok {
			return
		}
		cfg.PageSize = ev.To
		if err := svc.Save(cfg); err != nil {
			logger.Warn().Err(err).Msg("failed to save page size")
		} else {
			logger.Debug().Int("page_size", ev.To).Str("path", svc.Path()).Msg("page size saved")
		}
	})
}
