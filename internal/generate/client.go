package generate

import (
	"context"
	"time"
)

// Client is a text-generation backend. Implementations return the raw
// model reply for a single non-streamed completion.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Settings configures a concrete client.
type Settings struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}
