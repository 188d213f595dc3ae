package unit

// Factor table. Exact values from NIST SP 811 appendix B and NIST
// Handbook 44; derived units (area, volume, speed) expand the underlying
// length definitions exactly.

type unitSpec struct {
	id    string
	label string
	num   string
	den   string
	rel   Relation
}

type categorySpec struct {
	name   string
	base   string
	affine bool
	units  []unitSpec
}

// lin defines a linear unit: 1 unit = scale base units.
func lin(id, label, scale string) unitSpec {
	return unitSpec{id: id, label: label, num: scale, den: "1", rel: RelationLinear}
}

// ratio defines a linear unit with an exact rational scale num/den.
func ratio(id, label, num, den string) unitSpec {
	return unitSpec{id: id, label: label, num: num, den: den, rel: RelationLinear}
}

// recip defines a reciprocal unit: value in base = constant / value.
func recip(id, label, constant string) unitSpec {
	return unitSpec{id: id, label: label, num: constant, den: "1", rel: RelationReciprocal}
}

var table = []categorySpec{
	{
		name: "length",
		base: "meter",
		units: []unitSpec{
			lin("meter", "meter", "1"),
			lin("kilometer", "kilometer", "1000"),
			ratio("centimeter", "centimeter", "1", "100"),
			ratio("millimeter", "millimeter", "1", "1000"),
			ratio("micrometer", "micrometer", "1", "1000000"),
			ratio("nanometer", "nanometer", "1", "1000000000"),
			lin("mile", "mile", "1609.344"),
			lin("yard", "yard", "0.9144"),
			lin("foot", "foot", "0.3048"),
			lin("inch", "inch", "0.0254"),
			lin("nautical_mile", "nautical mile", "1852"),
			ratio("us_survey_foot", "US survey foot", "1200", "3937"),
		},
	},
	{
		name: "area",
		base: "square_meter",
		units: []unitSpec{
			lin("square_meter", "meter²", "1"),
			lin("square_kilometer", "kilometer²", "1000000"),
			lin("hectare", "hectare", "10000"),
			lin("square_mile", "mile²", "2589988.110336"),
			lin("acre", "acre", "4046.8564224"),
			lin("square_yard", "yard²", "0.83612736"),
			lin("square_foot", "foot²", "0.09290304"),
			lin("square_inch", "inch²", "0.00064516"),
		},
	},
	{
		name: "volume",
		base: "liter",
		units: []unitSpec{
			lin("liter", "liter", "1"),
			ratio("milliliter", "milliliter", "1", "1000"),
			lin("cubic_meter", "meter³", "1000"),
			lin("cubic_foot", "foot³", "28.316846592"),
			lin("cubic_inch", "inch³", "0.016387064"),
			lin("gallon_us", "US gallon", "3.785411784"),
			lin("quart_us", "US quart", "0.946352946"),
			lin("pint_us", "US pint", "0.473176473"),
			lin("cup_us", "US cup", "0.2365882365"),
			lin("fluid_ounce_us", "US fluid ounce", "0.0295735295625"),
			lin("gallon_imperial", "imperial gallon", "4.54609"),
			lin("barrel_oil", "oil barrel", "158.987294928"),
		},
	},
	{
		name: "mass",
		base: "kilogram",
		units: []unitSpec{
			lin("kilogram", "kilogram", "1"),
			ratio("gram", "gram", "1", "1000"),
			ratio("milligram", "milligram", "1", "1000000"),
			lin("metric_ton", "metric ton", "1000"),
			lin("pound", "pound", "0.45359237"),
			lin("ounce", "ounce", "0.028349523125"),
			lin("stone", "stone", "6.35029318"),
			lin("short_ton", "short ton (US)", "907.18474"),
			lin("long_ton", "long ton (imperial)", "1016.0469088"),
			lin("grain", "grain", "0.00006479891"),
		},
	},
	{
		name:   "temperature",
		base:   "kelvin",
		affine: true,
		units: []unitSpec{
			lin("celsius", "Celsius", "1"),
			lin("fahrenheit", "Fahrenheit", "1"),
			lin("kelvin", "Kelvin", "1"),
			lin("rankine", "Rankine", "1"),
		},
	},
	{
		name: "speed",
		base: "meter_per_second",
		units: []unitSpec{
			lin("meter_per_second", "meter/second", "1"),
			ratio("kilometer_per_hour", "kilometer/hour", "1000", "3600"),
			lin("mile_per_hour", "mile/hour", "0.44704"),
			ratio("knot", "knot", "1852", "3600"),
			lin("foot_per_second", "foot/second", "0.3048"),
		},
	},
	{
		name: "pressure",
		base: "pascal",
		units: []unitSpec{
			lin("pascal", "pascal", "1"),
			lin("kilopascal", "kilopascal", "1000"),
			lin("megapascal", "megapascal", "1000000"),
			lin("bar", "bar", "100000"),
			lin("millibar", "millibar", "100"),
			lin("atmosphere", "standard atmosphere", "101325"),
			ratio("torr", "torr", "101325", "760"),
			lin("psi", "psi", "6894.757293168"),
		},
	},
	{
		name: "energy",
		base: "joule",
		units: []unitSpec{
			lin("joule", "joule", "1"),
			lin("kilojoule", "kilojoule", "1000"),
			lin("calorie", "calorie", "4.184"),
			lin("kilocalorie", "kilocalorie", "4184"),
			lin("watt_hour", "watt hour", "3600"),
			lin("kilowatt_hour", "kilowatt hour", "3600000"),
			lin("btu", "BTU", "1055.05585262"),
			lin("foot_pound", "foot-pound", "1.3558179483314004"),
			lin("electronvolt", "electronvolt", "0.0000000000000000001602176634"),
		},
	},
	{
		name: "fuel_economy",
		base: "kilometer_per_liter",
		units: []unitSpec{
			lin("kilometer_per_liter", "kilometer/liter", "1"),
			ratio("mile_per_gallon_us", "mile/gallon (US)", "1.609344", "3.785411784"),
			ratio("mile_per_gallon_imperial", "mile/gallon (imperial)", "1.609344", "4.54609"),
			recip("liter_per_100km", "liter/100 km", "100"),
		},
	},
	{
		name: "digital_storage",
		base: "byte",
		units: []unitSpec{
			ratio("bit", "bit", "1", "8"),
			lin("byte", "byte", "1"),
			lin("kilobyte", "kilobyte", "1000"),
			lin("megabyte", "megabyte", "1000000"),
			lin("gigabyte", "gigabyte", "1000000000"),
			lin("terabyte", "terabyte", "1000000000000"),
			lin("petabyte", "petabyte", "1000000000000000"),
			lin("kibibyte", "kibibyte", "1024"),
			lin("mebibyte", "mebibyte", "1048576"),
			lin("gibibyte", "gibibyte", "1073741824"),
			lin("tebibyte", "tebibyte", "1099511627776"),
			lin("pebibyte", "pebibyte", "1125899906842624"),
		},
	},
	{
		name: "angle",
		base: "degree",
		units: []unitSpec{
			lin("degree", "degree", "1"),
			// 180/pi to 32 fractional digits, well past the 60-place
			// output bound once combined with divScale.
			lin("radian", "radian", "57.29577951308232087679815481410517"),
			lin("gradian", "gradian", "0.9"),
			ratio("arcminute", "arcminute", "1", "60"),
			ratio("arcsecond", "arcsecond", "1", "3600"),
			lin("turn", "turn", "360"),
		},
	},
}
