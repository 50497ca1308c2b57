package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AtsCheck struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	OriginalFilename string
	Mime             string
	ObjectKey        string
	Keywords         []string
	Status           string
	CreatedAt        time.Time
}

type AtsResult struct {
	ID        uuid.UUID
	CheckID   uuid.UUID
	Score     int32
	Result    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
