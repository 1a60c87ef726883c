package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/streakmind/internal/cli"
	"github.com/alexanderramin/streakmind/internal/companion"
	"github.com/alexanderramin/streakmind/internal/config"
	"github.com/alexanderramin/streakmind/internal/db"
	"github.com/alexanderramin/streakmind/internal/httpapi"
	"github.com/alexanderramin/streakmind/internal/llm"
	"github.com/alexanderramin/streakmind/internal/logger"
	"github.com/alexanderramin/streakmind/internal/metrics"
	"github.com/alexanderramin/streakmind/internal/repository"
	"github.com/alexanderramin/streakmind/internal/scoring"
	"github.com/alexanderramin/streakmind/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Logger.Level, Encoding: cfg.Logger.Encoding})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	policy, err := scoring.PolicyByName(cfg.StreakPolicy)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	// Generation is optional; without a client every reply is templated.
	var client llm.LLMClient
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		observers := llm.Observers{m}
		if llmCfg.LogCalls {
			observers = append(observers, llm.NewZapObserver(log))
		}
		client, err = llm.NewClient(ctx, llmCfg, observers)
		if err != nil {
			return fmt.Errorf("creating llm client: %w", err)
		}
	}

	svc := service.New(service.Deps{
		Store:     store,
		Replies:   companion.NewReplyService(client, 0, log),
		Policy:    policy,
		Logger:    log,
		Observers: []service.UseCaseObserver{m, service.NewZapUseCaseObserver(log)},
	})

	app := cli.NewApp(svc)
	app.HistoryPath = cli.DefaultHistoryPath()
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Serve = func(ctx context.Context) error {
		opts := httpapi.Options{Logger: log}
		if cfg.HTTP.EnableMetrics {
			opts.Gatherer = reg
		}
		srv := httpapi.NewServer(httpapi.ServerConfig{
			Addr:            cfg.HTTP.Addr,
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		}, httpapi.NewHandler(svc, opts), log)
		return srv.ListenAndServe(ctx)
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// openStore opens the configured backend and returns its close function.
func openStore(cfg config.StoreConfig) (repository.Store, func(), error) {
	switch cfg.Backend {
	case config.StoreBolt:
		bs, err := repository.OpenBoltStore(cfg.BoltPath)
		if err != nil {
			return repository.Store{}, nil, err
		}
		return bs.Store(), func() { _ = bs.Close() }, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return repository.Store{}, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteStore(database), func() { _ = database.Close() }, nil
	}
}
