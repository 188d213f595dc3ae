// Package history exposes the session history log as a read-only tool
// provider. The log itself stays append-only; there is deliberately no
// clear or delete tool.
package history

import (
	"context"
	"fmt"

	hist "github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/providers/common"
	"github.com/unitbox/unitbox/internal/shared/types"
)

// Provider implements history tools
type Provider struct {
	sessions *session.Manager
}

// NewProvider creates a history provider
func NewProvider(sessions *session.Manager) *Provider {
	return &Provider{sessions: sessions}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "history",
		Name:        "Conversion History",
		Description: "Read-only access to the session's conversion history and its exports",
		Category:    types.CategoryHistory,
		Capabilities: []string{
			"records",
			"stats",
			"export",
		},
		Tools: []types.Tool{
			{
				ID:          "history.records",
				Name:        "List Records",
				Description: "All records of the session in insertion order",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "history.stats",
				Name:        "History Stats",
				Description: "Record count per category",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "history.export",
				Name:        "Export History",
				Description: "Serialize the session history (csv, json, yaml, toml)",
				Parameters: []types.Parameter{
					{Name: "format", Type: "string", Description: "Export format", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	log, err := p.resolveLog(appCtx)
	if err != nil {
		return common.Failure(err.Error())
	}

	switch toolID {
	case "history.records":
		return p.records(log)
	case "history.stats":
		return p.stats(log)
	case "history.export":
		return p.export(log, params)
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) resolveLog(appCtx *types.Context) (*hist.Log, error) {
	if appCtx == nil || appCtx.SessionID == nil || *appCtx.SessionID == "" {
		return nil, fmt.Errorf("history tools require a session")
	}
	s, err := p.sessions.Get(*appCtx.SessionID)
	if err != nil {
		return nil, err
	}
	return s.Log(), nil
}

func (p *Provider) records(log *hist.Log) (*types.Result, error) {
	records := log.Records()
	out := make([]map[string]interface{}, len(records))
	for i, rec := range records {
		out[i] = map[string]interface{}{
			"timestamp":   rec.Timestamp,
			"category":    rec.Category,
			"source_unit": rec.SourceUnit,
			"target_unit": rec.TargetUnit,
			"input":       rec.Input,
			"output":      rec.Output,
			"precision":   rec.Precision,
		}
	}
	return common.Success(map[string]interface{}{
		"records": out,
		"count":   len(records),
	})
}

func (p *Provider) stats(log *hist.Log) (*types.Result, error) {
	categories := make(map[string]int)
	for _, rec := range log.Records() {
		categories[rec.Category]++
	}
	return common.Success(map[string]interface{}{
		"count":      log.Len(),
		"categories": categories,
	})
}

func (p *Provider) export(log *hist.Log, params map[string]interface{}) (*types.Result, error) {
	name, ok := common.GetString(params, "format")
	if !ok {
		return common.Failure("format parameter required")
	}

	format, err := hist.ParseFormat(name)
	if err != nil {
		return common.Failure(err.Error())
	}

	out, err := log.Export(format)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"format":       string(format),
		"content":      string(out),
		"content_type": format.ContentType(),
	})
}
