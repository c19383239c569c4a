package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReadmeFilename    = "README.md"
	ReadmeContentType = "text/markdown"
)

// Document is a rendered artifact ready to be handed to a download sink.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Generation records one successful README generation. Only metadata is
// kept; the document body is never stored.
type Generation struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Username  string    `json:"username"`
	RepoCount int       `json:"repo_count"`
	Languages []string  `json:"languages"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}
