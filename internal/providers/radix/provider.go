// Package radix exposes number-base conversion as a tool provider.
package radix

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/providers/common"
	"github.com/unitbox/unitbox/internal/shared/types"
	"github.com/unitbox/unitbox/internal/tools/radix"
)

// Provider implements number-base conversion tools
type Provider struct {
	sessions *session.Manager
}

// NewProvider creates a radix provider
func NewProvider(sessions *session.Manager) *Provider {
	return &Provider{sessions: sessions}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "radix",
		Name:        "Number Base Converter",
		Description: "Converts integer literals between binary, octal, decimal, and hexadecimal",
		Category:    types.CategoryRadix,
		Capabilities: []string{
			"binary",
			"octal",
			"decimal",
			"hexadecimal",
			"arbitrary_size",
		},
		Tools: []types.Tool{
			{
				ID:          "radix.convert",
				Name:        "Convert Base",
				Description: "Parse an integer literal in one base and render it in all four",
				Parameters: []types.Parameter{
					{Name: "value", Type: "string", Description: "Integer literal", Required: true},
					{Name: "base", Type: "number", Description: "Base of the literal (2, 8, 10, 16)", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "radix.convert":
		return p.convert(params, appCtx)
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) convert(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, ok := common.GetString(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}
	base, ok := common.GetInt(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}

	r, err := radix.Convert(value, base)
	if err != nil {
		return common.Failure(err.Error())
	}

	if p.sessions != nil && appCtx != nil {
		if log := p.sessions.Log(appCtx.SessionID); log != nil {
			log.Append(history.Record{
				Timestamp:  time.Now().UTC(),
				Category:   "radix",
				SourceUnit: "base " + strconv.Itoa(base),
				TargetUnit: "base 2/8/10/16",
				Input:      value,
				Output:     r.Decimal,
			})
		}
	}

	return common.Success(map[string]interface{}{
		"binary":  r.Binary,
		"octal":   r.Octal,
		"decimal": r.Decimal,
		"hex":     r.Hex,
	})
}
