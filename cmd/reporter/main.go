package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TickerScribe/internal/collector"
	"TickerScribe/internal/config"
	"TickerScribe/internal/recorder"
	"TickerScribe/internal/runner"
	"TickerScribe/internal/writer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TickerScribe starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// One-shot batch: the CI runner provides the schedule, so the process
	// only needs to survive until the run finishes or is interrupted.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
	}()

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.Data.Source {
	case "stooq":
		fetcher = collector.NewStooqFetcher(cfg.Proxy)
	case "mock":
		fetcher = &collector.MockFetcher{Price: 100}
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init writer
	var w writer.Writer
	switch cfg.Output.Backend {
	case "excel":
		w = writer.NewExcelWriter(cfg.Output.ExportPath)
	case "noop":
		w = writer.NewNoopWriter()
	default:
		sw, err := writer.NewSheetsWriter(ctx, cfg.SheetID, cfg.CredentialsJSON)
		if err != nil {
			log.Fatalf("[FATAL] init sheets writer: %v", err)
		}
		w = sw
	}
	log.Printf("[INFO] output backend: %s", w.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	r := runner.New(fetcher, w, rec, cfg.Data.Period, cfg.Data.Interval)
	runErr := r.Run(ctx, cfg.Tickers)

	if err := w.Close(); err != nil {
		log.Printf("[ERROR] close writer: %v", err)
	}
	if runErr != nil {
		log.Fatalf("[FATAL] run failed: %v", runErr)
	}
	log.Println("[INFO] TickerScribe finished")
}
