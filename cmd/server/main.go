// Command server hosts a small item API on top of restkit. It wires the
// error envelope, request ids, locale negotiation and regex validation
// together and is meant as a working reference for applications.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jse-go/restkit/pkg/config"
	"github.com/jse-go/restkit/pkg/httpserver"
	"github.com/jse-go/restkit/pkg/i18n"
	"github.com/jse-go/restkit/pkg/logger"
	"github.com/jse-go/restkit/pkg/requestid"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := cfg.I18n.catalog(ctx, log)
	if err != nil {
		return err
	}

	router, err := newRouter(routerDeps{
		log:       log,
		catalog:   catalog,
		codes:     cfg.errorCodes(),
		languages: cfg.I18n.Languages,
		store:     newItemStore(),
	})
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
