// Package unit implements the category registry for unit conversions.
//
// Every category routes conversions through a base unit (meter for length,
// kilogram for mass, kelvin for temperature). Linear units carry an exact
// rational scale to the base unit; temperature uses dedicated affine
// formulas; fuel economy mixes linear units with a reciprocal one
// (liter per 100 km).
//
// Conversion factors follow NIST SP 811 and Handbook 44. All arithmetic
// uses shopspring/decimal so results are reproducible and independent of
// binary floating point.
package unit
