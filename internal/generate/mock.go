package generate

import (
	"context"
	"fmt"
)

// MockClient is an offline stand-in for the real backend. It returns a
// tiny fenced document so the full cycle can run without credentials.
type MockClient struct{}

func (MockClient) Complete(_ context.Context, prompt string) (string, error) {
	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<title>Mock Landing Page</title>
<script src=%q></script>
</head>
<body>
<p>Generated from a %d-character prompt.</p>
</body>
</html>`, TailwindCDN, len(prompt))
	return "```html\n" + doc + "\n```", nil
}

func (MockClient) Model() string {
	return "mock"
}
