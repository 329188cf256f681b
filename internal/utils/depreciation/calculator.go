// Package depreciation implements the linear depreciation engine: pure
// functions over a domain.Asset and an as-of date. Every call is
// independently reproducible; there is no hidden state and no caching.
// Amounts are carried at full decimal precision and rounded to the
// currency's minor unit only at the presentation boundary.
package depreciation

import (
	"time"

	"github.com/praxisbooks/asset_depreciation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// businessFraction is the deductible share of the asset, in [0, 1].
func businessFraction(a domain.Asset) decimal.Decimal {
	return a.BusinessUsePercent.Div(hundred)
}

// DepreciableAmount is the base spread across the schedule: purchase value
// minus residual value.
func DepreciableAmount(a domain.Asset) decimal.Decimal {
	return a.PurchaseValue.Sub(a.ResidualValue)
}

// AnnualDepreciation is the steady-state per-year figure for a full year in
// range, already scaled by the business-use percentage.
func AnnualDepreciation(a domain.Asset) decimal.Decimal {
	if a.DepreciationYears < 1 {
		return decimal.Zero
	}
	years := decimal.NewFromInt(int64(a.DepreciationYears))
	return DepreciableAmount(a).Div(years).Mul(businessFraction(a))
}

// ForYear returns the depreciation attributable to one calendar year.
// The first year is prorated by the months remaining from the in-service
// month (inclusive); the last year carries the complementary fraction so
// that both partial years sum to exactly one full year's amount. Years after
// a disposal yield zero.
func ForYear(a domain.Asset, year int) decimal.Decimal {
	inService := a.InService()
	startYear := inService.Year()
	endYear := scheduleEndYear(a)

	if year < startYear || year > endYear {
		return decimal.Zero
	}
	if a.DisposalDate != nil && year > a.DisposalDate.Year() {
		return decimal.Zero
	}

	annual := AnnualDepreciation(a)
	month := int64(inService.Month())
	if a.DepreciationYears == 1 || month == 1 {
		// No partial years: every year in range is a full one.
		return annual
	}

	switch year {
	case startYear:
		return annual.Mul(decimal.NewFromInt(13 - month)).Div(twelve)
	case endYear:
		return annual.Mul(decimal.NewFromInt(month - 1)).Div(twelve)
	default:
		return annual
	}
}

// scheduleEndYear is the last calendar year carrying any depreciation. A
// January start fits the term exactly; any other start month spills the
// complementary partial year one year past the term.
func scheduleEndYear(a domain.Asset) int {
	inService := a.InService()
	if a.DepreciationYears == 1 || inService.Month() == time.January {
		return inService.Year() + a.DepreciationYears - 1
	}
	return inService.Year() + a.DepreciationYears
}

// monthsElapsed counts whole months from the start of the in-service month
// to asOf. A month accrues once the next calendar month begins; the result
// is never negative and never exceeds the scheduled term.
func monthsElapsed(a domain.Asset, asOf time.Time) int {
	inService := a.InService()
	months := (asOf.Year()-inService.Year())*12 + int(asOf.Month()) - int(inService.Month())
	if months < 0 {
		return 0
	}
	if limit := a.DepreciationYears * 12; months > limit {
		return limit
	}
	return months
}

// effectiveAsOf truncates asOf at the disposal date: no accrual past disposal.
func effectiveAsOf(a domain.Asset, asOf time.Time) time.Time {
	if a.DisposalDate != nil && a.DisposalDate.Before(asOf) {
		return *a.DisposalDate
	}
	return asOf
}

// ToDate returns cumulative depreciation from the in-service date through
// asOf, capped at the business-scaled depreciable base. Values for any date
// on or after a disposal equal the amount frozen at the disposal date.
func ToDate(a domain.Asset, asOf time.Time) decimal.Decimal {
	months := monthsElapsed(a, effectiveAsOf(a, asOf))
	total := AnnualDepreciation(a).Mul(decimal.NewFromInt(int64(months))).Div(twelve)

	base := DepreciableAmount(a).Mul(businessFraction(a))
	if total.GreaterThan(base) {
		return base
	}
	return total
}

// BookValue returns the business portion of the purchase value minus
// cumulative depreciation, floored at the business-scaled residual value.
// The floor holds regardless of elapsed time.
func BookValue(a domain.Asset, asOf time.Time) decimal.Decimal {
	frac := businessFraction(a)
	floor := a.ResidualValue.Mul(frac)
	value := a.PurchaseValue.Mul(frac).Sub(ToDate(a, asOf))
	if value.LessThan(floor) {
		return floor
	}
	return value
}

// YearsInUse counts whole years between the in-service date and
// min(disposal date, asOf). Never negative.
func YearsInUse(a domain.Asset, asOf time.Time) int {
	return monthsElapsed(a, effectiveAsOf(a, asOf)) / 12
}

// IsFullyDepreciated reports whether the asset has been in use for its whole
// scheduled term as of the given date.
func IsFullyDepreciated(a domain.Asset, asOf time.Time) bool {
	return YearsInUse(a, asOf) >= a.DepreciationYears
}

// Schedule returns the complete per-year depreciation table for an asset,
// derived from ForYear. Each row carries the running accumulated amount and
// the closing book value for that year.
func Schedule(a domain.Asset) []domain.ScheduleRow {
	startYear := a.InService().Year()
	endYear := scheduleEndYear(a)

	frac := businessFraction(a)
	floor := a.ResidualValue.Mul(frac)
	opening := a.PurchaseValue.Mul(frac)

	rows := make([]domain.ScheduleRow, 0, a.DepreciationYears+1)
	accumulated := decimal.Zero
	for year := startYear; year <= endYear; year++ {
		amount := ForYear(a, year)
		accumulated = accumulated.Add(amount)
		bookValue := opening.Sub(accumulated)
		if bookValue.LessThan(floor) {
			bookValue = floor
		}
		rows = append(rows, domain.ScheduleRow{
			Year:        year,
			Amount:      amount,
			Accumulated: accumulated,
			BookValue:   bookValue,
		})
	}
	return rows
}
