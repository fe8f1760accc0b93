package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tokrecharge/migration-server/pkg/cli/config"
	controller "github.com/tokrecharge/migration-server/pkg/controller/http"
	"github.com/tokrecharge/migration-server/pkg/usecase"
	"github.com/tokrecharge/migration-server/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		databaseCfg config.Database
		sentryCfg   config.Sentry
	)

	flags := append(serverCfg.Flags(), databaseCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			out := c.Root().Writer
			if out == nil {
				out = os.Stdout
			}

			if err := serverCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid server configuration")
			}

			printStartup(out, &serverCfg, &databaseCfg)
			logger.Info("Starting migration server",
				slog.Any("server", serverCfg),
				slog.Any("database", databaseCfg),
				slog.Bool("sentry", sentryCfg.Enabled()),
			)

			flush, err := sentryCfg.Configure(serverCfg.Environment)
			if err != nil {
				return err
			}
			defer flush()

			// Prepare static root before accepting connections
			_, err = usecase.Bootstrap(ctx, serverCfg.StaticDir,
				usecase.WithCreateNotice(func(staticDir string) {
					printBootstrapping(out, staticDir)
				}),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to bootstrap static root")
			}

			migrationUC, err := usecase.NewMigration(databaseCfg.URL)
			if err != nil {
				return goerr.Wrap(err, "failed to create migration use case")
			}

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				migrationUC,
				controller.WithAddr(serverCfg.Addr()),
				controller.WithStaticDir(serverCfg.StaticDir),
				controller.WithSentry(sentryCfg.Enabled()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Bind synchronously so that a port in use fails the command
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return goerr.Wrap(err, "failed to listen", goerr.V("addr", server.Addr))
			}

			port := ln.Addr().(*net.TCPAddr).Port
			printListening(out, net.JoinHostPort(serverCfg.Host, strconv.Itoa(port)))

			serveDone := async.Dispatch(ctx, func(ctx context.Context) error {
				ctxlog.From(ctx).Info("HTTP server starting", slog.String("addr", ln.Addr().String()))
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server error")
				}
				return nil
			})

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serveDone:
				if err != nil {
					return err
				}
				return goerr.New("HTTP server stopped unexpectedly")
			}

			// Graceful shutdown; ctx may already be cancelled here
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := <-serveDone; err != nil {
				return err
			}

			printStopped(out)
			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
