package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedscout/pkg/config"
	"github.com/umputun/feedscout/pkg/db"
	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/history"
	"github.com/umputun/feedscout/pkg/notify"
	"github.com/umputun/feedscout/pkg/scheduler"
	"github.com/umputun/feedscout/pkg/schema"
	"github.com/umputun/feedscout/pkg/source"
	"github.com/umputun/feedscout/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"feedscout.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen from config"`

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

	setupLog(opts.Debug)

	log.Printf("[INFO] starting feedscout %s", revision)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the components together and blocks until the context ends
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer database.Close()

	historyStore := history.NewStore(database, history.Config{})

	fetcher := source.NewHTTPFetcher(source.FetcherConfig{
		Timeout:   cfg.Fetch.Timeout,
		RateLimit: cfg.Fetch.RateLimit,
		UserAgent: cfg.Fetch.UserAgent,
	})

	var notifier source.NotificationScheduler
	if cfg.Notifications.Enabled {
		notifier = notify.NewScheduler(historyStore, notify.LogDelivery{}, nil, notify.Config{
			MinHour:   cfg.Notifications.MinHour,
			MaxHour:   cfg.Notifications.MaxHour,
			MaxPerDay: cfg.Notifications.MaxPerDay,
		})
	}

	blacklist, err := schema.LoadBlacklist(ctx, database)
	if err != nil {
		return fmt.Errorf("load blacklist: %w", err)
	}

	freshness := make(map[domain.SectionType]time.Duration, len(cfg.Sections.Freshness))
	for name, d := range cfg.Sections.Freshness {
		if t, ok := domain.ParseSectionType(name); ok {
			freshness[t] = d
		}
	}

	feedSchema, err := schema.Load(ctx, cfg.Feed.SiteURL, historyStore, blacklist, database,
		sourceFactory(cfg, fetcher, historyStore, notifier),
		schema.Config{
			MaxWorkers:         cfg.Sections.MaxWorkers,
			Freshness:          freshness,
			DefaultFreshness:   cfg.Sections.DefaultFreshness,
			MinSignificant:     cfg.Sections.MinSignificant,
			SignificantWindow:  time.Duration(cfg.Sections.SignificantWindowDays) * 24 * time.Hour,
			ContinueReadingAge: cfg.Sections.ContinueReadingAge,
		})
	if err != nil {
		return fmt.Errorf("load section schema: %w", err)
	}

	sched := scheduler.NewScheduler(feedSchema, scheduler.Config{UpdateInterval: cfg.Sections.UpdateInterval})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, feedSchema, historyStore, blacklist, revision, debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// sourceFactory builds the per-site content sources consumed by the schema.
// Nearby needs coordinates and RSS needs a feed URL, both optional.
func sourceFactory(cfg *config.Config, fetcher source.Fetcher, historyStore *history.Store,
	notifier source.NotificationScheduler) schema.SourceFactory {

	return func(siteURL string) map[domain.SectionType]source.ContentSource {
		sources := map[domain.SectionType]source.ContentSource{
			domain.SectionContinueReading: source.NewContinueReading(historyStore, cfg.Sections.ContinueReadingAge),
			domain.SectionMostRead:        source.NewCached(source.NewMostRead(siteURL, fetcher)),
			domain.SectionRandom:          source.NewRandom(siteURL, fetcher),
			domain.SectionMainPage:        source.NewCached(source.NewMainPage(siteURL, cfg.Feed.MainPageTitle, fetcher)),
			domain.SectionNews:            source.NewFeed(siteURL, fetcher, notifier),
		}
		if cfg.Feed.Latitude != 0 || cfg.Feed.Longitude != 0 {
			locator := source.StaticLocator{Lat: cfg.Feed.Latitude, Lon: cfg.Feed.Longitude}
			sources[domain.SectionNearby] = source.NewNearby(siteURL, fetcher, locator,
				cfg.Feed.NearbyRadius, cfg.Feed.NearbyLimit)
		}
		if cfg.Feed.RSSURL != "" {
			sources[domain.SectionRSS] = source.NewRSS(cfg.Feed.RSSURL, fetcher, 0)
		}
		return sources
	}
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
