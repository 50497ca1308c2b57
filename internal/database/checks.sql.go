package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const getAtsCheck = `-- name: GetAtsCheck :one
SELECT id, user_id, original_filename, mime, object_key, keywords, status, created_at FROM ats_checks WHERE id=$1
`

func (q *Queries) GetAtsCheck(ctx context.Context, id uuid.UUID) (AtsCheck, error) {
	row := q.db.QueryRowContext(ctx, getAtsCheck, id)
	var i AtsCheck
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.OriginalFilename,
		&i.Mime,
		&i.ObjectKey,
		pq.Array(&i.Keywords),
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const updateCheckStatus = `-- name: UpdateCheckStatus :exec
UPDATE ats_checks
SET status=$1
WHERE id=$2
`

type UpdateCheckStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateCheckStatus(ctx context.Context, arg UpdateCheckStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateCheckStatus, arg.Status, arg.ID)
	return err
}
