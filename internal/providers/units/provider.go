// Package units exposes the category registry and conversion dispatcher
// as a tool provider.
package units

import (
	"context"
	"fmt"

	"github.com/unitbox/unitbox/internal/domain/convert"
	"github.com/unitbox/unitbox/internal/domain/history"
	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/domain/unit"
	"github.com/unitbox/unitbox/internal/providers/common"
	"github.com/unitbox/unitbox/internal/shared/types"
)

// Provider implements unit conversion tools
type Provider struct {
	registry   *unit.Registry
	dispatcher *convert.Dispatcher
	sessions   *session.Manager
}

// NewProvider creates a units provider
func NewProvider(registry *unit.Registry, dispatcher *convert.Dispatcher, sessions *session.Manager) *Provider {
	return &Provider{
		registry:   registry,
		dispatcher: dispatcher,
		sessions:   sessions,
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "units",
		Name:        "Unit Converter",
		Description: "Converts values between units of length, mass, temperature, digital storage, and more",
		Category:    types.CategoryUnits,
		Capabilities: []string{
			"convert",
			"categories",
			"labels",
			"arbitrary_precision",
		},
		Tools: p.getTools(),
	}
}

func (p *Provider) getTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "units.categories",
			Name:        "List Categories",
			Description: "List all conversion categories in display order",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
		{
			ID:          "units.units",
			Name:        "List Units",
			Description: "List the units of a category with display labels",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Category name", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "units.convert",
			Name:        "Convert Value",
			Description: "Convert a decimal value between two units of one category",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Category name", Required: true},
				{Name: "from", Type: "string", Description: "Source unit", Required: true},
				{Name: "to", Type: "string", Description: "Target unit", Required: true},
				{Name: "value", Type: "string", Description: "Decimal value to convert", Required: true},
				{Name: "precision", Type: "number", Description: "Output precision (clamped to bounds)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "units.label",
			Name:        "Unit Label",
			Description: "Human-readable label for a unit",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Category name", Required: true},
				{Name: "unit", Type: "string", Description: "Unit identifier", Required: true},
			},
			Returns: "string",
		},
	}
}

// Execute routes tool calls
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "units.categories":
		return p.categories()
	case "units.units":
		return p.units(params)
	case "units.convert":
		return p.convert(params, appCtx)
	case "units.label":
		return p.label(params)
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) categories() (*types.Result, error) {
	return common.Success(map[string]interface{}{
		"categories": p.registry.Categories(),
	})
}

func (p *Provider) units(params map[string]interface{}) (*types.Result, error) {
	name, ok := common.GetString(params, "category")
	if !ok {
		return common.Failure("category parameter required")
	}

	c, err := p.registry.Category(name)
	if err != nil {
		return common.Failure(err.Error())
	}

	units := c.Units()
	out := make([]map[string]interface{}, len(units))
	for i, u := range units {
		out[i] = map[string]interface{}{
			"id":    u.ID,
			"label": u.Label,
		}
	}

	return common.Success(map[string]interface{}{
		"category": c.Name,
		"base":     c.Base,
		"units":    out,
	})
}

func (p *Provider) convert(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	category, ok := common.GetString(params, "category")
	if !ok {
		return common.Failure("category parameter required")
	}
	from, ok := common.GetString(params, "from")
	if !ok {
		return common.Failure("from parameter required")
	}
	to, ok := common.GetString(params, "to")
	if !ok {
		return common.Failure("to parameter required")
	}
	value, ok := common.GetString(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}

	req := convert.Request{Category: category, From: from, To: to, Value: value}
	if precision, ok := common.GetInt(params, "precision"); ok {
		req.Precision = &precision
	}

	outcome, err := p.dispatcher.Convert(req, p.sessionLog(appCtx))
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"category":  category,
		"from":      from,
		"to":        to,
		"input":     value,
		"value":     outcome.Formatted,
		"precision": outcome.Precision,
	})
}

func (p *Provider) label(params map[string]interface{}) (*types.Result, error) {
	category, ok := common.GetString(params, "category")
	if !ok {
		return common.Failure("category parameter required")
	}
	unitID, ok := common.GetString(params, "unit")
	if !ok {
		return common.Failure("unit parameter required")
	}

	label, err := p.registry.Label(category, unitID)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"label": label,
	})
}

func (p *Provider) sessionLog(appCtx *types.Context) *history.Log {
	if p.sessions == nil || appCtx == nil {
		return nil
	}
	return p.sessions.Log(appCtx.SessionID)
}
