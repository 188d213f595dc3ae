package unit

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownCategory indicates a category name that is not registered.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownUnit indicates a unit identifier not registered for the category.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrOutOfDomain indicates a physically impossible value, such as a
	// temperature below absolute zero or a zero reciprocal rate.
	ErrOutOfDomain = errors.New("value out of domain")
)

// divScale is the working precision (decimal places) for intermediate
// divisions. It exceeds the maximum output precision so rounding at the
// requested precision stays exact.
const divScale = 80

// Relation describes how a unit relates to its category's base unit.
type Relation string

const (
	// RelationLinear scales by an exact rational factor.
	RelationLinear Relation = "linear"
	// RelationReciprocal inverts through a constant (liter per 100 km).
	RelationReciprocal Relation = "reciprocal"
)

// Unit is a single unit within a category.
type Unit struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	rel Relation
	num decimal.Decimal
	den decimal.Decimal
}

// Relation returns how the unit relates to the category base.
func (u Unit) Relation() Relation {
	return u.rel
}

// toBase converts a value in this unit to the category base unit.
func (u Unit) toBase(v decimal.Decimal) (decimal.Decimal, error) {
	if u.rel == RelationReciprocal {
		if v.IsZero() {
			return decimal.Decimal{}, ErrOutOfDomain
		}
		return u.num.DivRound(v, divScale), nil
	}
	return v.Mul(u.num).DivRound(u.den, divScale), nil
}

// fromBase converts a value in the category base unit to this unit.
func (u Unit) fromBase(v decimal.Decimal) (decimal.Decimal, error) {
	if u.rel == RelationReciprocal {
		if v.IsZero() {
			return decimal.Decimal{}, ErrOutOfDomain
		}
		return u.num.DivRound(v, divScale), nil
	}
	return v.Mul(u.den).DivRound(u.num, divScale), nil
}

// Category is an ordered, immutable set of units sharing one dimension.
type Category struct {
	Name   string
	Base   string
	Affine bool

	units []Unit
	index map[string]int
}

// Units returns the category's units in registration order.
func (c *Category) Units() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Unit looks up a unit by identifier.
func (c *Category) Unit(id string) (Unit, bool) {
	i, ok := c.index[id]
	if !ok {
		return Unit{}, false
	}
	return c.units[i], true
}
