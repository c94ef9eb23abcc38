// Package meta forwards conversion events to the Meta (Facebook) Conversions
// API. One attempt per event, no retry; the caller decides what a failure
// means for its own response.
package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"backend/internal/config"
)

const graphBaseURL = "https://graph.facebook.com"

type UserData struct {
	ClientIPAddress string `json:"client_ip_address,omitempty"`
	ClientUserAgent string `json:"client_user_agent,omitempty"`
	Fbp             string `json:"fbp,omitempty"`
	Fbc             string `json:"fbc,omitempty"`
	Email           string `json:"em,omitempty"` // sha256-hashed
	Phone           string `json:"ph,omitempty"` // sha256-hashed
}

type CustomData struct {
	Value       float64 `json:"value,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	OrderID     string  `json:"order_id,omitempty"`
	ContentName string  `json:"content_name,omitempty"`
	NumItems    int     `json:"num_items,omitempty"`
}

type Event struct {
	EventName      string      `json:"event_name"`
	EventTime      int64       `json:"event_time"`
	EventID        string      `json:"event_id,omitempty"`
	EventSourceURL string      `json:"event_source_url,omitempty"`
	ActionSource   string      `json:"action_source"`
	UserData       UserData    `json:"user_data"`
	CustomData     *CustomData `json:"custom_data,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

type apiResponse struct {
	EventsReceived int       `json:"events_received"`
	Error          *apiError `json:"error"`
}

type Client struct {
	pixelID       string
	accessToken   string
	apiVersion    string
	testEventCode string
	baseURL       string
	httpClient    *http.Client
}

func NewClient(cfg config.MetaConfig) *Client {
	return &Client{
		pixelID:       cfg.PixelID,
		accessToken:   cfg.AccessToken,
		apiVersion:    cfg.APIVersion,
		testEventCode: cfg.TestEventCode,
		baseURL:       graphBaseURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the client at a different Graph API host, used when
// exercising the forwarder against a stand-in server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	clone := *c
	clone.baseURL = baseURL
	return &clone
}

// Enabled reports whether credentials are configured at all.
func (c *Client) Enabled() bool {
	return c.pixelID != "" && c.accessToken != ""
}

// SendEvent posts a single event batch to the Conversions API and returns the
// API's own error message when the event was rejected.
func (c *Client) SendEvent(ctx context.Context, event Event) error {
	payload := map[string]interface{}{
		"data": []Event{event},
	}
	if c.testEventCode != "" {
		payload["test_event_code"] = c.testEventCode
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/events?access_token=%s",
		c.baseURL, c.apiVersion, c.pixelID, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send event: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("conversions api returned status %d", resp.StatusCode)
		}
		return nil
	}

	if parsed.Error != nil {
		return fmt.Errorf("conversions api error: %s", parsed.Error.Message)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("conversions api returned status %d", resp.StatusCode)
	}
	return nil
}
