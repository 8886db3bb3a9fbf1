package n8n

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// DefaultTimeout bounds the webhook call so a slow automation engine never
// ties up request handlers.
const DefaultTimeout = 10 * time.Second

var ErrNotConfigured = errors.New("n8n webhook URL not configured")

// RemoteError is a non-2xx answer from the webhook; Body carries the remote
// response text for diagnostics.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("n8n returned %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	webhookURL string
	username   string
	password   string
	http       *http.Client
}

func NewClient(webhookURL, username, password string) *Client {
	return &Client{
		webhookURL: webhookURL,
		username:   username,
		password:   password,
		http: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

func NewClientFromEnv() *Client {
	return NewClient(
		os.Getenv("N8N_AI_APPLY_WEBHOOK_URL"),
		os.Getenv("N8N_BASIC_AUTH_USER"),
		os.Getenv("N8N_BASIC_AUTH_PASSWORD"),
	)
}

func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

func (c *Client) Forward(ctx context.Context, event AiApplyEvent) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize ai-apply payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	// Basic auth only when both halves are present; a lone user or password
	// would produce a broken header.
	if c.username != "" && c.password != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
		req.Header.Set("Authorization", "Basic "+creds)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error communicating with n8n: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	log.Printf("n8n: ai-apply forwarded for client %s (status %d)", event.Client.ID, resp.StatusCode)
	return nil
}
