package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"recsel/internal/logging"
	"recsel/internal/server"
	"recsel/internal/store"
)

// ServeCommand returns the reference catalog server command.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the reference catalog server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "127.0.0.1:8390",
				Usage: "Listen address",
			},
			&cli.StringFlag{
				Name:  "db",
				Value: "recsel.db",
				Usage: "SQLite database path",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Seed N demo records into an empty store",
			},
			&cli.BoolFlag{
				Name:  "no-total",
				Usage: "Omit pagination.total from responses",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	logger, err := logging.Setup(logging.Config{
		Level:  logging.LogLevel(c.String("log-level")),
		Pretty: true,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("set up logging: %v", err), 1)
	}

	db, err := store.OpenSQLite(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("open database: %v", err), 1)
	}
	defer db.Close()

	st, err := store.New(db)
	if err != nil {
		return cli.Exit(fmt.Sprintf("init store: %v", err), 1)
	}

	if n := c.Int("seed"); n > 0 {
		if _, err := st.Seed(c.Context, n); err != nil {
			return cli.Exit(fmt.Sprintf("seed store: %v", err), 1)
		}
	}

	count, err := st.CountRecords(c.Context)
	if err != nil {
		return cli.Exit(fmt.Sprintf("count records: %v", err), 1)
	}

	srv := server.New(st, server.Options{OmitTotal: c.Bool("no-total")})
	httpServer := &http.Server{
		Addr:              c.String("addr"),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Int("records", count).
			Bool("omit_total", c.Bool("no-total")).
			Msg("catalog server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return cli.Exit(fmt.Sprintf("server failed: %v", err), 1)
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return cli.Exit(fmt.Sprintf("shutdown: %v", err), 1)
	}

	logger.Info().Msg("server stopped")
	return nil
}
