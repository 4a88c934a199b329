package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newIDIfNil(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
