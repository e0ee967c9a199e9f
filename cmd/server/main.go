// Command server exposes the DAIDE glosser as a JSON REST API.
//
// Endpoints:
//
//	POST /daide2gloss   body: {"daidetext":"FRM (ENG) (FRA) (...)","tones":["Haughty"]}
//	GET  /random?tones=Haughty,Urgent
//	POST /parse         body: {"daidetext":"..."}
//	GET  /healthz
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/daide-tools/pressgloss"
	"github.com/daide-tools/pressgloss/internal/config"
	"github.com/daide-tools/pressgloss/internal/web"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := cfg.Logger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.Options(logger)
	if err != nil {
		logger.Fatal("loading reference data", zap.Error(err))
	}
	g, err := pressgloss.New(opts...)
	if err != nil {
		logger.Fatal("building glosser", zap.Error(err))
	}

	h := web.NewHandler(g, web.Options{
		Tones:          cfg.Tones(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})

	logger.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Int("powers", len(g.RefData().Powers())))
	if err := http.ListenAndServe(cfg.Server.Addr, h); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
