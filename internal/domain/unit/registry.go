package unit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Registry holds the closed set of categories, built once at startup.
type Registry struct {
	categories []*Category
	index      map[string]*Category
}

// NewRegistry builds the registry from the factor table. It panics on a
// malformed table since that is a programmer error, not runtime input.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]*Category, len(table))}

	for _, spec := range table {
		if _, dup := r.index[spec.name]; dup {
			panic(fmt.Sprintf("unit: duplicate category %q", spec.name))
		}

		c := &Category{
			Name:   spec.name,
			Base:   spec.base,
			Affine: spec.affine,
			units:  make([]Unit, 0, len(spec.units)),
			index:  make(map[string]int, len(spec.units)),
		}

		for _, us := range spec.units {
			if _, dup := c.index[us.id]; dup {
				panic(fmt.Sprintf("unit: duplicate unit %q in %q", us.id, spec.name))
			}
			num := decimal.RequireFromString(us.num)
			den := decimal.RequireFromString(us.den)
			if num.IsZero() || den.IsZero() {
				panic(fmt.Sprintf("unit: zero factor for %q in %q", us.id, spec.name))
			}
			c.index[us.id] = len(c.units)
			c.units = append(c.units, Unit{
				ID:    us.id,
				Label: us.label,
				rel:   us.rel,
				num:   num,
				den:   den,
			})
		}

		if _, ok := c.index[spec.base]; !ok {
			panic(fmt.Sprintf("unit: base unit %q not registered in %q", spec.base, spec.name))
		}

		r.categories = append(r.categories, c)
		r.index[spec.name] = c
	}

	return r
}

// Categories returns category names in registration order.
func (r *Registry) Categories() []string {
	names := make([]string, len(r.categories))
	for i, c := range r.categories {
		names[i] = c.Name
	}
	return names
}

// Category looks up a category by name.
func (r *Registry) Category(name string) (*Category, error) {
	c, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// UnitsFor returns the ordered unit identifiers for a category. The order
// is stable across calls so selection controls stay consistent.
func (r *Registry) UnitsFor(category string) ([]string, error) {
	c, err := r.Category(category)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(c.units))
	for i, u := range c.units {
		ids[i] = u.ID
	}
	return ids, nil
}

// Label returns the human-readable label for a unit.
func (r *Registry) Label(category, unitID string) (string, error) {
	c, err := r.Category(category)
	if err != nil {
		return "", err
	}
	u, ok := c.Unit(unitID)
	if !ok {
		return "", fmt.Errorf("%w: %q in %q", ErrUnknownUnit, unitID, category)
	}
	return u.Label, nil
}

// Convert converts a value between two units of one category, routed
// through the category's base unit.
func (r *Registry) Convert(category, from, to string, v decimal.Decimal) (decimal.Decimal, error) {
	c, err := r.Category(category)
	if err != nil {
		return decimal.Decimal{}, err
	}

	uf, ok := c.Unit(from)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q in %q", ErrUnknownUnit, from, category)
	}
	ut, ok := c.Unit(to)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q in %q", ErrUnknownUnit, to, category)
	}

	// Temperature offsets differ per unit pair, so affine categories use
	// dedicated formulas instead of scale factors.
	if c.Affine {
		return convertTemperature(uf.ID, ut.ID, v)
	}

	base, err := uf.toBase(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ut.fromBase(base)
}
