package unit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	celsiusOffset    = decimal.RequireFromString("273.15")
	fahrenheitOffset = decimal.RequireFromString("459.67")
	five             = decimal.NewFromInt(5)
	nine             = decimal.NewFromInt(9)
)

// convertTemperature converts between temperature scales through kelvin.
// The kelvin intermediate must not be negative: absolute zero bounds every
// scale.
func convertTemperature(from, to string, v decimal.Decimal) (decimal.Decimal, error) {
	k, err := toKelvin(from, v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if k.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %s is below absolute zero", ErrOutOfDomain, v.String(), from)
	}
	return fromKelvin(to, k)
}

func toKelvin(from string, v decimal.Decimal) (decimal.Decimal, error) {
	switch from {
	case "celsius":
		return v.Add(celsiusOffset), nil
	case "fahrenheit":
		return v.Add(fahrenheitOffset).Mul(five).DivRound(nine, divScale), nil
	case "kelvin":
		return v, nil
	case "rankine":
		return v.Mul(five).DivRound(nine, divScale), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q in \"temperature\"", ErrUnknownUnit, from)
	}
}

func fromKelvin(to string, k decimal.Decimal) (decimal.Decimal, error) {
	switch to {
	case "celsius":
		return k.Sub(celsiusOffset), nil
	case "fahrenheit":
		return k.Mul(nine).DivRound(five, divScale).Sub(fahrenheitOffset), nil
	case "kelvin":
		return k, nil
	case "rankine":
		return k.Mul(nine).DivRound(five, divScale), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q in \"temperature\"", ErrUnknownUnit, to)
	}
}
