package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateAtsResult = `-- name: CreateOrUpdateAtsResult :exec
INSERT INTO ats_results (
check_id, score, result)
VALUES ( $1, $2, $3)
ON CONFLICT (check_id)
DO UPDATE SET
    score = EXCLUDED.score,
    result = EXCLUDED.result,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateAtsResultParams struct {
	CheckID uuid.UUID
	Score   int32
	Result  json.RawMessage
}

func (q *Queries) CreateOrUpdateAtsResult(ctx context.Context, arg CreateOrUpdateAtsResultParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateAtsResult, arg.CheckID, arg.Score, arg.Result)
	return err
}
