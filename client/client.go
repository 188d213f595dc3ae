// Package client is a typed Go client for the UnitBox HTTP API.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to a UnitBox server.
type Client struct {
	http *resty.Client
}

// apiError is the server's JSON error body.
type apiError struct {
	Error string `json:"error"`
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// ConvertRequest is one conversion request.
type ConvertRequest struct {
	Category  string  `json:"category"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Value     string  `json:"value"`
	Precision *int    `json:"precision,omitempty"`
	SessionID *string `json:"session_id,omitempty"`
}

// ConvertResult is the server's conversion response.
type ConvertResult struct {
	Category  string `json:"category"`
	From      string `json:"from"`
	To        string `json:"to"`
	Input     string `json:"input"`
	Value     string `json:"value"`
	Precision int    `json:"precision"`
}

// Category describes one conversion category.
type Category struct {
	Name   string `json:"name"`
	Base   string `json:"base"`
	Affine bool   `json:"affine"`
	Units  int    `json:"units"`
}

// Unit describes one unit of a category.
type Unit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Session identifies a server-side session.
type Session struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Record is one history entry.
type Record struct {
	Timestamp  time.Time `json:"timestamp"`
	Category   string    `json:"category"`
	SourceUnit string    `json:"source_unit"`
	TargetUnit string    `json:"target_unit"`
	Input      string    `json:"input"`
	Output     string    `json:"output"`
	Precision  int       `json:"precision"`
}

// ToolResult is the outcome of a tool execution.
type ToolResult struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// Convert performs one unit conversion.
func (c *Client) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	var out ConvertResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/convert")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errorFrom(resp)
	}
	return &out, nil
}

// Categories lists all conversion categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/categories")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errorFrom(resp)
	}
	return out.Categories, nil
}

// Units lists the units of one category.
func (c *Client) Units(ctx context.Context, category string) ([]Unit, error) {
	var out struct {
		Units []Unit `json:"units"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get(fmt.Sprintf("/categories/%s/units", category))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errorFrom(resp)
	}
	return out.Units, nil
}

// Execute runs a service tool by its dotted ID.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}, sessionID *string) (*ToolResult, error) {
	var out ToolResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"tool_id":    toolID,
			"params":     params,
			"session_id": sessionID,
		}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/services/execute")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errorFrom(resp)
	}
	return &out, nil
}

// CreateSession starts a new server-side session.
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	var out Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/sessions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errorFrom(resp)
	}
	return &out, nil
}

// EndSession ends a session, discarding its history.
func (c *Client) EndSession(ctx context.Context, sessionID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete("/sessions/" + sessionID)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return errorFrom(resp)
	}
	return nil
}

// History fetches a session's conversion history.
func (c *Client) History(ctx context.Context, sessionID string) ([]Record, error) {
	var out struct {
		Records []Record `json:"records"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/sessions/" + sessionID + "/history")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errorFrom(resp)
	}
	return out.Records, nil
}

// Export downloads a session's history in the given format and returns
// the raw bytes plus the response content type.
func (c *Client) Export(ctx context.Context, sessionID, format string) ([]byte, string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", format).
		SetError(&apiError{}).
		Get("/sessions/" + sessionID + "/history/export")
	if err != nil {
		return nil, "", err
	}
	if resp.IsError() {
		return nil, "", errorFrom(resp)
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

func errorFrom(resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != "" {
		return fmt.Errorf("unitbox: %s (status %d)", apiErr.Error, resp.StatusCode())
	}
	return fmt.Errorf("unitbox: unexpected status %d", resp.StatusCode())
}
