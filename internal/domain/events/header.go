package events

import (
	"time"

	"github.com/google/uuid"
)

type Header struct {
	ID          string `json:"id"`
	PublishedAt string `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
