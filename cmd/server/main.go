package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	post_service "blog-service/internal/application/service/post"
	input_post "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/search"
	"blog-service/internal/infrastructure/config"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	"blog-service/internal/infrastructure/inbound/http/render"
	metrics_server "blog-service/internal/infrastructure/inbound/metrics"
	"blog-service/internal/infrastructure/logger"
	redis_cache "blog-service/internal/infrastructure/outbound/cache/redis"
	console_mail "blog-service/internal/infrastructure/outbound/mail/console"
	smtp_mail "blog-service/internal/infrastructure/outbound/mail/smtp"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	comment_postgres "blog-service/internal/infrastructure/outbound/repository/comment/postgres"
	post_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
	tag_postgres "blog-service/internal/infrastructure/outbound/repository/tag/postgres"
	search_bleve "blog-service/internal/infrastructure/outbound/search/bleve"
	"blog-service/internal/infrastructure/validation"
)

func main() {
	cfg := config.MustLoad()
	dsn := cfg.Database.DSN()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Database.MigrationsEnabled {
		if err := postgres.RunMigrations(dsn, log); err != nil {
			log.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	tagRepo := tag_postgres.NewTagRepository(pool, log, metrics)
	commentRepo := comment_postgres.NewCommentRepository(pool, log, metrics)

	var searcher search.Searcher = postRepo
	if cfg.Search.Backend == "bleve" {
		index, err := search_bleve.Open(cfg.Search.IndexPath, postRepo, log, cfg.Search.Limit)
		if err != nil {
			log.Error("Failed to open search index", slog.String("path", cfg.Search.IndexPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := index.Close(); err != nil {
				log.Error("Failed to close search index", slog.String("error", err.Error()))
			}
		}()

		indexed, err := index.Reindex(ctx)
		if err != nil {
			log.Error("Failed to build search index", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("Search index ready", slog.Int("posts", indexed))

		reindexCtx, stopReindex := context.WithCancel(ctx)
		defer stopReindex()
		go index.Run(reindexCtx, cfg.Search.ReindexInterval)

		searcher = index
	}

	var mailer ports.Mailer
	switch cfg.Mail.Backend {
	case "smtp":
		mailer = smtp_mail.NewMailer(cfg.Mail, log)
	default:
		mailer = console_mail.NewMailer(os.Stdout, log)
	}

	originalPostService := post_service.NewPostService(
		postRepo,
		tagRepo,
		commentRepo,
		searcher,
		mailer,
		unitOfWork,
		log,
		metrics,
		post_service.Settings{
			PageSize:      cfg.Blog.PageSize,
			SimilarLimit:  cfg.Blog.SimilarLimit,
			MailFrom:      cfg.Mail.From,
			SearchBackend: cfg.Search.Backend,
		},
	)

	var postService input_post.Service = originalPostService
	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()

		postCache := redis_cache.NewPostCache(redisClient, log, cfg.Redis.PostTTL)
		postService = post_service.NewPostServiceCacheDecorator(originalPostService, postCache, postRepo, commentRepo, log, metrics)
	}

	renderer, err := render.NewRenderer(log)
	if err != nil {
		log.Error("Failed to load templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	postHTTPApi := post_http.NewPostHTTPService(postService, validation.New(), renderer, cfg.HTTPServer.BaseURL, log)
	router := delivery_http.NewRouter(postHTTPApi, renderer, log, metrics, pool.Ping)
	httpServer := delivery_http.NewServer(
		router,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		cfg.HTTPServer.ReadTimeout,
		cfg.HTTPServer.WriteTimeout,
		log,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
