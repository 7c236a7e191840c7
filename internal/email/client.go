package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client sends order confirmation requests to the email service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// StatusError is returned when the service answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("email service returned status %d: %s", e.StatusCode, e.Message)
}

type confirmationRequest struct {
	Email string `json:"email"`
	Order any    `json:"order,omitempty"`
}

// SendOrderConfirmation asks the service to prepare the confirmation for
// order and address it to email.
func (c *Client) SendOrderConfirmation(ctx context.Context, email string, order any) error {
	data, err := json.Marshal(confirmationRequest{Email: email, Order: order})
	if err != nil {
		return fmt.Errorf("marshal confirmation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send confirmation request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	return nil
}
