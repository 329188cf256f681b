package depreciation

import "github.com/shopspring/decimal"

// Policy carries the capitalization rules supplied by configuration. It is
// passed explicitly into the engine; there is no ambient settings object.
type Policy struct {
	// CapitalizationThreshold is the net purchase amount at and above which a
	// purchase must be capitalized instead of direct-expensed.
	CapitalizationThreshold decimal.Decimal
	// MinimumTermYears is the shortest depreciation term an asset may carry.
	MinimumTermYears int
	// ResidualFraction is the default residual value as a fraction of the
	// purchase value.
	ResidualFraction decimal.Decimal
}

// DefaultPolicy returns the standard rule set: 450 currency units threshold,
// 5 year minimum term, 10% residual value.
func DefaultPolicy() Policy {
	return Policy{
		CapitalizationThreshold: decimal.NewFromInt(450),
		MinimumTermYears:        5,
		ResidualFraction:        decimal.RequireFromString("0.10"),
	}
}

// QualifiesForDepreciation reports whether a purchase amount must be
// capitalized. Amounts below the threshold are direct-expensed.
func (p Policy) QualifiesForDepreciation(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.CapitalizationThreshold)
}

// DefaultResidualValue returns the default residual value for a purchase,
// rounded half-up to the currency's minor unit.
func (p Policy) DefaultResidualValue(purchaseValue decimal.Decimal) decimal.Decimal {
	return purchaseValue.Mul(p.ResidualFraction).Round(2)
}

// ValidateDepreciationYears clamps a requested term up to the minimum. A
// higher user-supplied term is never lowered.
func (p Policy) ValidateDepreciationYears(requested int) int {
	minYears := p.MinimumTermYears
	if minYears < 1 {
		minYears = 1
	}
	if requested < minYears {
		return minYears
	}
	return requested
}
