package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"BreakoutSentinel/internal/alert"
	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/config"
	"BreakoutSentinel/internal/ledger"
	"BreakoutSentinel/internal/notifier"
	"BreakoutSentinel/internal/recorder"
	"BreakoutSentinel/internal/scheduler"
	"BreakoutSentinel/internal/screener"
	"BreakoutSentinel/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BreakoutSentinel starting...")

	// .env is optional; real env vars win either way
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

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

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("[FATAL] load market timezone: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, loc)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, loc)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init analyzer and pass runner
	col := collector.NewCollector(fetcher, cfg.Market.LookbackDays)
	analyzer, err := screener.NewAnalyzer(loc, cfg.Market.WindowStart, cfg.Market.WindowEnd)
	if err != nil {
		log.Fatalf("[FATAL] init analyzer: %v", err)
	}
	runner := screener.NewRunner(col, analyzer, cfg.Symbols())
	log.Printf("[INFO] watch list: %d symbols", len(cfg.Symbols()))

	// Init notification ledger
	led, err := ledger.New(cfg.Ledger.File)
	if err != nil {
		log.Fatalf("[FATAL] init notification ledger: %v", err)
	}
	log.Printf("[INFO] notification ledger: %d symbols already notified", led.Len())

	// Init email notifier
	var notif notifier.Notifier
	if cfg.SMTPConfigured() {
		en, err := notifier.NewEmailNotifier(cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, cfg.SMTP.To)
		if err != nil {
			log.Printf("[WARN] init email notifier failed, alerts disabled: %v", err)
			notif = notifier.NewNoopNotifier()
		} else {
			notif = en
		}
	} else {
		log.Println("[WARN] SMTP not configured, alerts disabled")
		notif = notifier.NewNoopNotifier()
	}

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	dispatcher := alert.NewDispatcher(led, notif, rec)
	sched := scheduler.NewScheduler(ctx, runner, dispatcher, rec)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh pass: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// First pass right away so the dashboard has data
	go sched.RunNow()

	// Start dashboard
	srv := server.NewServer(sched, led, cfg.Server.RefreshSeconds)
	go func() {
		if err := srv.Start(cfg.Server.Listen); err != nil {
			log.Fatalf("[FATAL] dashboard server: %v", err)
		}
	}()

	log.Println("[INFO] BreakoutSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BreakoutSentinel stopped")
}
