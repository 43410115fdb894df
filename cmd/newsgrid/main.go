package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/umputun/newsgrid/pkg/archive"
	"github.com/umputun/newsgrid/pkg/config"
	"github.com/umputun/newsgrid/pkg/content"
	"github.com/umputun/newsgrid/pkg/llm"
	"github.com/umputun/newsgrid/pkg/provider"
	"github.com/umputun/newsgrid/pkg/refresh"
	"github.com/umputun/newsgrid/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"f" long:"config" env:"CONFIG" default:"newsgrid.yml" description:"config file"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"status server listen address override"`
	Service bool   `short:"s" long:"service" env:"SERVICE" description:"run the status server with periodic refreshes"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] newsgrid failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, assembles the refresh service and executes
// either a single pass or the long-running service mode
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, cfg.Headlines.APIKey, cfg.LLM.APIKey)
	log.Printf("[INFO] starting newsgrid version %s", revision)

	svc, cleanup, err := makeService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if !opts.Service {
		return svc.Run(ctx)
	}

	interval := 24 * time.Hour / time.Duration(cfg.Refresh.WindowsPerDay)
	log.Printf("[INFO] service mode, refresh every %s", interval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.New(cfg, revision, opts.Debug).Run(gctx)
	})
	g.Go(func() error {
		if err := svc.Run(gctx); err != nil {
			log.Printf("[WARN] refresh failed: %v", err)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := svc.Run(gctx); err != nil {
					log.Printf("[WARN] refresh failed: %v", err)
				}
			}
		}
	})
	return g.Wait()
}

// makeService assembles the provider chain and the refresh orchestrator
func makeService(ctx context.Context, cfg *config.Config) (*refresh.Service, func(), error) {
	regionNames := make(map[string]string, len(cfg.Regions))
	for _, r := range cfg.Regions {
		regionNames[r.Key] = r.Name
	}

	var providers []provider.Provider
	if cfg.Headlines.APIKey != "" {
		providers = append(providers,
			provider.NewHeadlinesClient(cfg.Headlines.Endpoint, cfg.Headlines.APIKey, cfg.Headlines.Countries, cfg.Headlines.Timeout))
	}
	if len(cfg.Feeds) > 0 {
		providers = append(providers, provider.NewRSSProvider(cfg.Feeds, cfg.Headlines.Timeout))
	}
	providers = append(providers, provider.NewSimulated(regionNames))

	limit := rate.Inf
	if cfg.Refresh.Pace > 0 {
		limit = rate.Every(cfg.Refresh.Pace)
	}
	pacer := rate.NewLimiter(limit, 1)

	svc := &refresh.Service{
		Fetcher:    provider.NewChain(pacer, providers...),
		Summarizer: llm.NewSummarizer(cfg.LLM),
		Pacer:      pacer,
		Config:     cfg,
	}

	if cfg.Extraction.Enabled {
		svc.Extractor = content.NewExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MinTextLength)
	}

	cleanup := func() {}
	if cfg.Archive.Enabled {
		arc, err := archive.New(ctx, cfg.Archive.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open archive: %w", err)
		}
		svc.Recorder = arc
		cleanup = func() {
			if err := arc.Close(); err != nil {
				log.Printf("[WARN] archive close failed: %v", err)
			}
		}
	}

	return svc, cleanup, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
