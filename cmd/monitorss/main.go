package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/Imsleepyyy/MonitoRSS/pkg/bus"
	"github.com/Imsleepyyy/MonitoRSS/pkg/config"
	"github.com/Imsleepyyy/MonitoRSS/pkg/disable"
	"github.com/Imsleepyyy/MonitoRSS/pkg/dispatch"
	"github.com/Imsleepyyy/MonitoRSS/pkg/entitlement"
	"github.com/Imsleepyyy/MonitoRSS/pkg/scheduler"
	"github.com/Imsleepyyy/MonitoRSS/pkg/store"
	"github.com/Imsleepyyy/MonitoRSS/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

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

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting monitorss scheduler version %s", revision)

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

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("connect to mongo: %w", err)
	}
	defer func() {
		if e := client.Disconnect(context.Background()); e != nil {
			log.Printf("[WARN] mongo disconnect error: %v", e)
		}
	}()

	feeds := store.NewFeeds(client.Database(cfg.Mongo.Database))
	if err = feeds.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate feed store: %w", err)
	}

	mq, err := bus.NewAMQP(ctx, cfg.Bus.URI)
	if err != nil {
		return fmt.Errorf("connect to bus: %w", err)
	}
	defer func() {
		if e := mq.Close(); e != nil {
			log.Printf("[WARN] bus close error: %v", e)
		}
	}()

	benefits := entitlement.New(cfg.Entitlements.Endpoint, cfg.Entitlements.Timeout)

	rateSync := dispatch.NewSynchronizer(benefits, feeds, cfg.Schedule.DefaultRefreshRate, cfg.Schedule.MinRefreshRate)
	dispatcher := dispatch.NewDispatcher(dispatch.DispatcherParams{
		Store:                   feeds,
		Synchronizer:            rateSync,
		Benefits:                benefits,
		BatchSize:               cfg.Schedule.BatchSize,
		DefaultMaxDailyArticles: cfg.Schedule.DefaultMaxDailyArticles,
	})
	enforcer := dispatch.NewLimitEnforcer(benefits, feeds, cfg.Schedule.DefaultMaxFeeds)

	sched := scheduler.New(scheduler.Params{
		Dispatcher:      dispatcher,
		Rates:           feeds,
		Enforcer:        enforcer,
		Publisher:       mq,
		DefaultRate:     cfg.Schedule.DefaultRefreshRate,
		Tick:            cfg.Schedule.Tick,
		EnforceInterval: cfg.Schedule.EnforceInterval,
		DeliveryTTL:     cfg.Schedule.DeliveryTTL,
	})
	sched.Start(ctx)
	defer sched.Stop()

	coordinator := disable.NewCoordinator(feeds)

	srv := server.New(server.Params{
		Stats:     feeds,
		Refresher: sched,
		Listen:    cfg.Server.Listen,
		Timeout:   cfg.Server.Timeout,
		Version:   revision,
		Debug:     opts.Debug,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return coordinator.Run(ctx, mq) })
	g.Go(func() error { return srv.Run(ctx) })

	if err = g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
