// Package encoding exposes reversible text transforms and charset
// detection as a tool provider.
package encoding

import (
	"context"
	"fmt"
	"time"

	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/providers/common"
	"github.com/unitbox/unitbox/internal/shared/types"
	"github.com/unitbox/unitbox/internal/tools/encoding"
)

// Provider implements text encoding tools
type Provider struct {
	sessions *session.Manager
}

// NewProvider creates an encoding provider
func NewProvider(sessions *session.Manager) *Provider {
	return &Provider{sessions: sessions}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "encoding",
		Name:        "Text Encoder",
		Description: "Applies reversible transforms (Base64, URL, hex, binary) and detects charsets",
		Category:    types.CategoryText,
		Capabilities: []string{
			"base64",
			"url_encoding",
			"hex",
			"binary",
			"charset_detection",
		},
		Tools: []types.Tool{
			{
				ID:          "encoding.encode",
				Name:        "Encode Text",
				Description: "Apply a named transform to the UTF-8 bytes of text",
				Parameters: []types.Parameter{
					{Name: "scheme", Type: "string", Description: "Transform (base64, url, hex, binary)", Required: true},
					{Name: "text", Type: "string", Description: "Input text", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "encoding.decode",
				Name:        "Decode Text",
				Description: "Reverse a named transform; malformed input is an error",
				Parameters: []types.Parameter{
					{Name: "scheme", Type: "string", Description: "Transform (base64, url, hex, binary)", Required: true},
					{Name: "text", Type: "string", Description: "Encoded text", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "encoding.detect",
				Name:        "Detect Charset",
				Description: "Best-guess character set of raw text bytes",
				Parameters: []types.Parameter{
					{Name: "text", Type: "string", Description: "Raw input", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "encoding.schemes",
				Name:        "List Schemes",
				Description: "Supported transform names",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "encoding.encode":
		return p.transform(params, appCtx, false)
	case "encoding.decode":
		return p.transform(params, appCtx, true)
	case "encoding.detect":
		return p.detect(params)
	case "encoding.schemes":
		return p.schemes()
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) transform(params map[string]interface{}, appCtx *types.Context, decode bool) (*types.Result, error) {
	name, ok := common.GetString(params, "scheme")
	if !ok {
		return common.Failure("scheme parameter required")
	}
	text, ok := common.GetString(params, "text")
	if !ok {
		return common.Failure("text parameter required")
	}

	scheme, err := encoding.ParseScheme(name)
	if err != nil {
		return common.Failure(err.Error())
	}

	var out string
	direction := "encode"
	if decode {
		direction = "decode"
		out, err = encoding.Decode(scheme, text)
	} else {
		out, err = encoding.Encode(scheme, text)
	}
	if err != nil {
		return common.Failure(err.Error())
	}

	p.record(appCtx, string(scheme)+" "+direction, text, out)
	return common.Success(map[string]interface{}{
		"scheme": string(scheme),
		"result": out,
	})
}

func (p *Provider) detect(params map[string]interface{}) (*types.Result, error) {
	text, ok := common.GetString(params, "text")
	if !ok {
		return common.Failure("text parameter required")
	}

	det, err := encoding.Detect([]byte(text))
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"charset":    det.Charset,
		"language":   det.Language,
		"confidence": det.Confidence,
	})
}

func (p *Provider) schemes() (*types.Result, error) {
	schemes := encoding.Schemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = string(s)
	}
	return common.Success(map[string]interface{}{
		"schemes": names,
	})
}

func (p *Provider) record(appCtx *types.Context, op, input, output string) {
	if p.sessions == nil || appCtx == nil {
		return
	}
	if log := p.sessions.Log(appCtx.SessionID); log != nil {
		log.Append(history.Record{
			Timestamp:  time.Now().UTC(),
			Category:   "encoding",
			SourceUnit: "text",
			TargetUnit: op,
			Input:      input,
			Output:     output,
		})
	}
}
