package main

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/muhammadolammi/atschecker/internal/ats"
	"github.com/muhammadolammi/atschecker/internal/database"
	"github.com/muhammadolammi/atschecker/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// Check statuses written to ats_checks and broadcast on the updates exchange.
const (
	statusPending    = "pending"
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)

type checkStore interface {
	GetAtsCheck(ctx context.Context, id uuid.UUID) (database.AtsCheck, error)
	UpdateCheckStatus(ctx context.Context, arg database.UpdateCheckStatusParams) error
	CreateOrUpdateAtsResult(ctx context.Context, arg database.CreateOrUpdateAtsResultParams) error
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

var _ publisher = (*amqp.Channel)(nil)

type WorkerConfig struct {
	DB               checkStore
	R2               objectGetter
	R2Bucket         string
	RabbitConn       *amqp.Connection
	CheckQueue       string
	UpdatesExchange  string
	Checker          *ats.Checker
	Metrics          *metrics.Recorder
	Logger           zerolog.Logger
	DownloadAttempts uint64
}

// CheckMessage is the body of a request on the check queue.
type CheckMessage struct {
	CheckID uuid.UUID `json:"check_id" validate:"required"`
}

type CheckUpdate struct {
	CheckID   uuid.UUID `json:"check_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Score     *int      `json:"score,omitempty"`
	Band      string    `json:"band,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
