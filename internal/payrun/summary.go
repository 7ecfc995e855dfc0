package payrun

import (
	"github.com/shilpmis/saral-payroll/internal/catalog"

	"github.com/shopspring/decimal"
)

// DefaultBasicPayComponentID is the catalog id conventionally holding the
// "Basic Pay" component. The service reads the real value from
// configuration so a fresh install can declare its own basis component.
const DefaultBasicPayComponentID int64 = 1

var oneHundred = decimal.NewFromInt(100)

type Summary struct {
	Earnings   decimal.Decimal `json:"earnings"`
	Deductions decimal.Decimal `json:"deductions"`
	NetPay     decimal.Decimal `json:"net_pay"`
}

// Summarize reduces a pay run's components to earnings, deductions and net
// pay. Pure and idempotent: the same run always yields the same summary.
//
// Resolution per line, first match wins:
//  1. a set amount is taken as-is (flat amounts beat percentages),
//  2. a percentage based on annual CTC resolves against CTC/12,
//  3. a percentage based on basic pay resolves against the basic-pay
//     line in the same run (identified by basisComponentID); if that line
//     is missing or has no percentage the value is zero,
//  4. otherwise zero.
//
// Earnings take component_type "earning"; deduction and benefit both land
// in deductions. The live catalog type wins over the type stored on the
// line, since the line may be stale relative to a catalog edit.
func Summarize(run StaffPayRun, snap catalog.Snapshot, basisComponentID int64) Summary {
	earnings := decimal.Zero
	deductions := decimal.Zero

	for _, component := range run.Components {
		value := resolveValue(component, run.BasedAnnualCTC, run.Components, basisComponentID)

		if liveComponentType(component, snap) == catalog.ComponentTypeEarning {
			earnings = earnings.Add(value)
		} else {
			deductions = deductions.Add(value)
		}
	}

	return Summary{
		Earnings:   earnings,
		Deductions: deductions,
		NetPay:     earnings.Sub(deductions),
	}
}

func resolveValue(
	component PayRunComponent,
	annualCTC decimal.Decimal,
	all []PayRunComponent,
	basisComponentID int64,
) decimal.Decimal {
	switch {
	case component.Amount.Valid:
		return component.Amount.Decimal

	case component.Percentage.Valid && component.IsBasedOnAnnualCTC:
		return monthlyShare(annualCTC, component.Percentage.Decimal)

	case component.Percentage.Valid && component.IsBasedOnBasicPay:
		basic, ok := findComponent(all, basisComponentID)
		if !ok || !basic.Percentage.Valid {
			return decimal.Zero
		}
		basicPay := monthlyShare(annualCTC, basic.Percentage.Decimal)
		return basicPay.Mul(component.Percentage.Decimal).Div(oneHundred)

	default:
		return decimal.Zero
	}
}

// monthlyShare is pct% of the annual figure, divided over twelve months.
func monthlyShare(annual, pct decimal.Decimal) decimal.Decimal {
	return annual.Mul(pct).Div(oneHundred).Div(monthsPerYear)
}

func findComponent(components []PayRunComponent, salaryComponentsID int64) (PayRunComponent, bool) {
	for _, c := range components {
		if c.SalaryComponentsID == salaryComponentsID {
			return c, true
		}
	}
	return PayRunComponent{}, false
}

func liveComponentType(component PayRunComponent, snap catalog.Snapshot) string {
	if details, ok := snap.Lookup(component.SalaryComponentsID); ok {
		return details.ComponentType
	}
	return component.ComponentType
}
