package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"newsgate/internal/apperr"
	"newsgate/internal/config"
	"newsgate/internal/nntp"
	"newsgate/internal/publisher"
	"newsgate/internal/render"
	"newsgate/internal/service"
	"newsgate/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	group := flag.String("group", "", "newsgroup to select (defaults to the served group)")
	flag.Usage = usage
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Debug("connected to database", "driver", cfg.Database.Driver)

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	schema := postgres.Schema{TablePrefix: cfg.Blog.TablePrefix}
	mapping := postgres.NewMappingStore(db)

	syncService := service.NewSyncService(
		postgres.NewBlogStore(db, schema),
		mapping,
		postgres.NewTransactionManager(db),
		pub,
		cfg.NNTP.Hostname,
		logger,
	)

	engine := nntp.NewEngine(
		syncService,
		mapping,
		postgres.NewArticleView(db, schema),
		newRenderer(cfg.NNTP.BodyFormat),
		cfg.NNTP.Hostname,
		logger,
	)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	cli := &commandLine{
		backend: nntp.NewBackend(engine),
		syncer:  syncService,
		group:   *group,
		out:     out,
	}

	if err := cli.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(out, statusLine(err))
		out.Flush()
		if !errors.Is(err, apperr.ErrNotFound) {
			logger.Error("command failed", "command", flag.Arg(0), "error", err)
		}
		os.Exit(1)
	}
}

func newRenderer(format string) render.Renderer {
	if format == config.BodyFormatPlain {
		return render.Plain{}
	}
	return render.HTML{}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: newsgate [-config file] [-group name] <command> [args]

commands:
  sync                       number new blog rows and print counters
  list                       LIST
  group                      GROUP
  listgroup                  LISTGROUP
  stat <n>                   STAT
  article|head|body <id>     ARTICLE, HEAD, BODY by number or <message-id>
  last <n> | next <n>        LAST, NEXT relative to article n
  xover [range]              XOVER, range is n, n- or n-m
  xhdr <header> [range]      XHDR
  xpat <header> <range> <pattern...>
  xgtitle [pattern]          XGTITLE
  newgroups <time>           NEWGROUPS, time in RFC 3339
  newnews <pattern> <time>   NEWNEWS, time in RFC 3339
`)
	flag.PrintDefaults()
}
