package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/atschecker/internal/ats"
	"github.com/muhammadolammi/atschecker/internal/config"
	"github.com/muhammadolammi/atschecker/internal/database"
	"github.com/muhammadolammi/atschecker/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume check requests from RabbitMQ and store the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorker(cmd.Context())
		},
	}
}

func runWorker(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		return fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting to db: %w", err)
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return fmt.Errorf("error creating aws config: %w", err)
	}
	r2Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2.Endpoint())
	})

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	defer conn.Close()

	recorder := metrics.NewRecorder()
	metricsServer := startMetricsServer(cfg.MetricsAddr, recorder)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	workerConfig := WorkerConfig{
		DB:               database.New(db),
		R2:               r2Client,
		R2Bucket:         cfg.R2.Bucket,
		RabbitConn:       conn,
		CheckQueue:       cfg.CheckQueue,
		UpdatesExchange:  cfg.UpdatesExchange,
		Checker:          ats.NewChecker(ats.LoadCatalog(cfg.KeywordsPath, log.Logger), log.Logger),
		Metrics:          recorder,
		Logger:           log.Logger,
		DownloadAttempts: cfg.DownloadAttempts,
	}

	log.Info().
		Int("workers", cfg.Workers).
		Str("queue", cfg.CheckQueue).
		Int("keywords", workerConfig.Checker.Catalog().Len()).
		Msg("starting consumer worker pool")
	workerConfig.StartConsumerWorkerPool(ctx, cfg.Workers)

	if ctx.Err() == nil {
		return errors.New("all workers stopped")
	}
	return nil
}

func startMetricsServer(addr string, recorder *metrics.Recorder) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	return srv
}
