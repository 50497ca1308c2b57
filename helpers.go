package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/streadway/amqp"
)

var ErrInvalidMessage = errors.New("invalid check message")

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

func decodeCheckMessage(body []byte) (CheckMessage, error) {
	var msg CheckMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return CheckMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := getValidator().Struct(msg); err != nil {
		return CheckMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return msg, nil
}

// --- File Download ---

func DownloadFromR2(ctx context.Context, client objectGetter, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		err = fmt.Errorf("failed to get object: %w", err)
		// a missing object will not appear on retry
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

// retry runs fn up to attempts times with exponential backoff between tries.
func retry[T any](ctx context.Context, attempts uint64, fn func() (T, error)) (T, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 500 * time.Millisecond
	expo.MaxElapsedTime = 30 * time.Second

	bo := backoff.WithContext(backoff.WithMaxRetries(expo, attempts-1), ctx)
	result, err := backoff.RetryWithData[T](fn, bo)
	if err != nil {
		return result, fmt.Errorf("after %d attempts: %w", attempts, err)
	}
	return result, nil
}

func publishCheckUpdate(ch publisher, exchange string, update CheckUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal check update: %w", err)
	}
	routingKey := fmt.Sprintf("check.%s", update.CheckID)

	return ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   update.Timestamp,
			Body:        body,
		},
	)
}
