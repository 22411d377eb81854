// The agent binary connects to the game mod's websocket feed and plays
// combat turns: each incoming state is answered with the next planned action.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WangCCe/slay-the-spire-ai/logging"
	"github.com/WangCCe/slay-the-spire-ai/planner"
)

func main() {
	var (
		url        = flag.String("url", "ws://127.0.0.1:8080/combat", "mod websocket endpoint")
		statsDir   = flag.String("stats", "", "directory for parquet telemetry (empty disables)")
		configPath = flag.String("config", "", "YAML planner config overrides")
		reconnect  = flag.Duration("reconnect", 5*time.Second, "delay between reconnect attempts")
		verbose    = flag.Bool("v", false, "debug logging")
		pretty     = flag.Bool("pretty", false, "indent log output")
	)
	flag.Parse()

	log := logging.Setup(*verbose, *pretty)

	cfg := planner.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = planner.LoadConfig(*configPath)
		if err != nil {
			log.Error("load config failed", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientCfg := defaultClientConfig()
	clientCfg.URL = *url
	clientCfg.StatsDir = *statsDir

	for {
		worker := NewWorker(clientCfg, planner.New(cfg, log), log)
		err := worker.Run(ctx)
		if ctx.Err() != nil {
			log.Info("shutting down")
			return
		}
		if err != nil {
			log.Warn("session ended", "err", err)
		} else {
			log.Info("session closed")
		}

		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case <-time.After(*reconnect):
		}
	}
}
