// Package codepoint exposes ASCII/Unicode lookup as a tool provider.
package codepoint

import (
	"context"
	"fmt"
	"time"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/providers/common"
	"github.com/unitbox/unitbox/internal/shared/types"
	"github.com/unitbox/unitbox/internal/tools/codepoint"
)

// Provider implements character and code point lookup tools
type Provider struct {
	sessions *session.Manager
}

// NewProvider creates a codepoint provider
func NewProvider(sessions *session.Manager) *Provider {
	return &Provider{sessions: sessions}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "codepoint",
		Name:        "Code Point Lookup",
		Description: "Maps characters to Unicode code points and back, with the full ASCII table",
		Category:    types.CategoryText,
		Capabilities: []string{
			"unicode",
			"ascii_table",
			"char_to_code",
			"code_to_char",
		},
		Tools: []types.Tool{
			{
				ID:          "codepoint.inspect",
				Name:        "Inspect Character",
				Description: "Code point of a single character in decimal, hex, octal, and binary",
				Parameters: []types.Parameter{
					{Name: "char", Type: "string", Description: "Single character", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "codepoint.char",
				Name:        "Code Point to Character",
				Description: "Character for a Unicode code point",
				Parameters: []types.Parameter{
					{Name: "code", Type: "number", Description: "Code point (0 to 0x10FFFF, no surrogates)", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "codepoint.table",
				Name:        "ASCII Table",
				Description: "All 128 ASCII rows with numeral renditions",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "codepoint.inspect":
		return p.inspect(params, appCtx)
	case "codepoint.char":
		return p.char(params, appCtx)
	case "codepoint.table":
		return p.table()
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) inspect(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	char, ok := common.GetString(params, "char")
	if !ok {
		return common.Failure("char parameter required")
	}

	info, err := codepoint.Inspect(char)
	if err != nil {
		return common.Failure(err.Error())
	}

	p.record(appCtx, "char", "code point", info.Char, "U+"+info.Hex)
	return common.Success(infoData(info))
}

func (p *Provider) char(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	code, ok := common.GetInt(params, "code")
	if !ok {
		return common.Failure("code parameter required")
	}

	info, err := codepoint.FromCode(int64(code))
	if err != nil {
		return common.Failure(err.Error())
	}

	p.record(appCtx, "code point", "char", info.Decimal, info.Char)
	return common.Success(infoData(info))
}

func (p *Provider) table() (*types.Result, error) {
	rows := codepoint.Table()
	out := make([]map[string]interface{}, len(rows))
	for i := range rows {
		out[i] = infoData(&rows[i])
	}
	return common.Success(map[string]interface{}{
		"rows": out,
	})
}

func (p *Provider) record(appCtx *types.Context, from, to, input, output string) {
	if p.sessions == nil || appCtx == nil {
		return
	}
	if log := p.sessions.Log(appCtx.SessionID); log != nil {
		log.Append(history.Record{
			Timestamp:  time.Now().UTC(),
			Category:   "codepoint",
			SourceUnit: from,
			TargetUnit: to,
			Input:      input,
			Output:     output,
		})
	}
}

func infoData(info *codepoint.Info) map[string]interface{} {
	return map[string]interface{}{
		"char":    info.Char,
		"code":    info.Code,
		"decimal": info.Decimal,
		"hex":     info.Hex,
		"octal":   info.Octal,
		"binary":  info.Binary,
	}
}
