package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/atschecker/internal/ats"
	"github.com/muhammadolammi/atschecker/internal/database"
	"github.com/muhammadolammi/atschecker/internal/metrics"
	"github.com/rs/zerolog"
)

const saveAttempts = 3

// runCheck downloads the resume for a check, scores it and stores the result.
// Download and save are retried; scoring itself cannot fail.
func (workerConfig *WorkerConfig) runCheck(ctx context.Context, checkID uuid.UUID) (ats.Result, error) {
	check, err := workerConfig.DB.GetAtsCheck(ctx, checkID)
	if err != nil {
		return ats.Result{}, fmt.Errorf("error getting check %v: %w", checkID, err)
	}

	fileBytes, err := retry(ctx, workerConfig.DownloadAttempts, func() ([]byte, error) {
		return DownloadFromR2(ctx, workerConfig.R2, workerConfig.R2Bucket, check.ObjectKey)
	})
	if err != nil {
		return ats.Result{}, fmt.Errorf("file download error for %s: %w", check.ObjectKey, err)
	}

	result := workerConfig.Checker.Check(fileBytes, check.Keywords)

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return ats.Result{}, fmt.Errorf("failed to marshal ats result: %w", err)
	}

	_, err = retry(ctx, saveAttempts, func() (struct{}, error) {
		return struct{}{}, workerConfig.DB.CreateOrUpdateAtsResult(ctx, database.CreateOrUpdateAtsResultParams{
			CheckID: check.ID,
			Score:   int32(result.Score),
			Result:  resultJSON,
		})
	})
	if err != nil {
		return ats.Result{}, fmt.Errorf("failed to save ats result: %w", err)
	}

	return result, nil
}

func (workerConfig *WorkerConfig) setStatus(ctx context.Context, ch publisher, update CheckUpdate, logger zerolog.Logger) {
	update.Timestamp = time.Now()

	err := workerConfig.DB.UpdateCheckStatus(ctx, database.UpdateCheckStatusParams{
		Status: update.Status,
		ID:     update.CheckID,
	})
	if err != nil {
		logger.Error().Err(err).Str("status", update.Status).Msg("failed to update check status")
	}

	if err := publishCheckUpdate(ch, workerConfig.UpdatesExchange, update); err != nil {
		logger.Error().Err(err).Str("status", update.Status).Msg("failed to publish update")
	}
}

// handleMessage processes one delivery and reports whether it should be
// requeued. Status writes are not cancelled with ctx.
func (workerConfig *WorkerConfig) handleMessage(ctx context.Context, ch publisher, body []byte) (requeue bool) {
	msg, err := decodeCheckMessage(body)
	if err != nil {
		workerConfig.Logger.Warn().Err(err).Msg("dropping check message")
		workerConfig.Metrics.CheckDone(metrics.StatusInvalid)
		return false
	}
	statusCtx := context.WithoutCancel(ctx)

	logger := workerConfig.Logger.With().Str("check_id", msg.CheckID.String()).Logger()
	logger.Info().Msg("processing check")

	workerConfig.setStatus(statusCtx, ch, CheckUpdate{
		CheckID: msg.CheckID,
		Status:  statusProcessing,
		Message: "check started",
	}, logger)

	result, err := workerConfig.runCheck(ctx, msg.CheckID)
	if err != nil && ctx.Err() != nil {
		logger.Warn().Err(err).Msg("check interrupted by shutdown, requeueing")
		workerConfig.Metrics.CheckDone(metrics.StatusRequeued)
		workerConfig.setStatus(statusCtx, ch, CheckUpdate{
			CheckID: msg.CheckID,
			Status:  statusPending,
			Message: "check requeued",
		}, logger)
		return true
	}
	if err != nil {
		logger.Error().Err(err).Msg("check failed")
		workerConfig.Metrics.CheckDone(metrics.StatusFailed)
		workerConfig.setStatus(statusCtx, ch, CheckUpdate{
			CheckID: msg.CheckID,
			Status:  statusFailed,
			Message: "check failed",
		}, logger)
		return false
	}

	workerConfig.Metrics.Scored(result.Source, result.Score)
	workerConfig.Metrics.CheckDone(metrics.StatusCompleted)
	logger.Info().Int("score", result.Score).Str("source", result.Source).Msg("check completed")

	score := result.Score
	workerConfig.setStatus(statusCtx, ch, CheckUpdate{
		CheckID: msg.CheckID,
		Status:  statusCompleted,
		Message: "check completed",
		Score:   &score,
		Band:    ats.Band(score),
	}, logger)
	return false
}

func (workerConfig *WorkerConfig) worker(ctx context.Context, id int, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := workerConfig.Logger.With().Int("worker", id+1).Logger()

	ch, err := workerConfig.RabbitConn.Channel()
	if err != nil {
		logger.Error().Err(err).Msg("error connecting to rabbitmq channel")
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		workerConfig.CheckQueue, // queue name
		true,                    // durable (survives broker restarts)
		false,                   // auto-delete when unused
		false,                   // exclusive
		false,                   // no-wait
		nil,                     // arguments
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to declare queue")
		return
	}

	err = ch.ExchangeDeclare(
		workerConfig.UpdatesExchange, // name
		"topic",                      // kind
		true,                         // durable
		false,                        // auto-delete
		false,                        // internal
		false,                        // no-wait
		nil,                          // arguments
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to declare updates exchange")
		return
	}

	if err := ch.Qos(1, 0, false); err != nil {
		logger.Error().Err(err).Msg("failed to set prefetch")
		return
	}

	msgs, err := ch.Consume(
		workerConfig.CheckQueue, // queue name
		"",                      // consumer tag
		false,                   // auto-ack
		false,                   // exclusive
		false,                   // no-local
		false,                   // no-wait
		nil,                     // arguments
	)
	if err != nil {
		logger.Error().Err(err).Msg("error consuming rabbitmq message")
		return
	}

	logger.Info().Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker stopping")
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Warn().Msg("delivery channel closed")
				return
			}
			if workerConfig.handleMessage(ctx, ch, d.Body) {
				if err := d.Nack(false, true); err != nil {
					logger.Error().Err(err).Msg("failed to requeue message")
				}
				continue
			}
			if err := d.Ack(false); err != nil {
				logger.Error().Err(err).Msg("failed to ack message")
			}
		}
	}
}

// StartConsumerWorkerPool blocks until every worker has stopped, either
// because ctx was cancelled or the broker connection went away.
func (workerConfig *WorkerConfig) StartConsumerWorkerPool(ctx context.Context, numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		go workerConfig.worker(ctx, i, &wg)
	}
	wg.Wait()
}
