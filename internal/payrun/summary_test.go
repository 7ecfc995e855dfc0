package payrun_test

import (
	"testing"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/payrun"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func nd(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func noDec() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

func assertDecimalEqual(t *testing.T, expected, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}

func TestSummarize_PercentageOfAnnualCTC(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 10,
				Percentage:         nd(10),
				IsBasedOnAnnualCTC: true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, dec(10000), summary.Earnings)
	assertDecimalEqual(t, decimal.Zero, summary.Deductions)
	assertDecimalEqual(t, dec(10000), summary.NetPay)
}

func TestSummarize_PercentageOfBasicPay(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 1,
				Percentage:         nd(50),
				IsBasedOnAnnualCTC: true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
			{
				SalaryComponentsID: 20,
				Percentage:         nd(20),
				IsBasedOnBasicPay:  true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	// basic pay = 1,200,000 x 50% / 12 = 50,000; line 20 = 50,000 x 20% = 10,000
	assertDecimalEqual(t, dec(60000), summary.Earnings)
	assertDecimalEqual(t, dec(60000), summary.NetPay)
}

func TestSummarize_BasicPayLineMissing(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 20,
				Percentage:         nd(20),
				IsBasedOnBasicPay:  true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, decimal.Zero, summary.Earnings)
	assertDecimalEqual(t, decimal.Zero, summary.NetPay)
}

func TestSummarize_FlatAmountBeatsPercentage(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 7,
				Amount:             nd(5000),
				Percentage:         nd(10),
				IsBasedOnAnnualCTC: true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, dec(5000), summary.Earnings)
}

func TestSummarize_DeductionsAndNetPayIdentity(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 1,
				Percentage:         nd(50),
				IsBasedOnAnnualCTC: true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
			{
				SalaryComponentsID: 30,
				Amount:             nd(1800),
				ComponentType:      catalog.ComponentTypeDeduction,
			},
			{
				SalaryComponentsID: 31,
				Percentage:         nd(12),
				IsBasedOnBasicPay:  true,
				ComponentType:      catalog.ComponentTypeDeduction,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, dec(50000), summary.Earnings)
	assertDecimalEqual(t, dec(7800), summary.Deductions)
	assertDecimalEqual(t, summary.Earnings.Sub(summary.Deductions), summary.NetPay)
}

func TestSummarize_BenefitCountsAsDeduction(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(600000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 40,
				Amount:             nd(2500),
				ComponentType:      catalog.ComponentTypeBenefit,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, decimal.Zero, summary.Earnings)
	assertDecimalEqual(t, dec(2500), summary.Deductions)
	assertDecimalEqual(t, dec(-2500), summary.NetPay)
}

func TestSummarize_LiveCatalogTypeWins(t *testing.T) {
	snap := catalog.NewSnapshot([]catalog.SalaryComponent{
		{ID: 50, ComponentName: "Arrears", ComponentType: catalog.ComponentTypeDeduction},
	})
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(600000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 50,
				Amount:             nd(1000),
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, snap, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, dec(1000), summary.Deductions)
}

func TestSummarize_NoValueResolvesToZero(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 60,
				Amount:             noDec(),
				Percentage:         noDec(),
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, decimal.Zero, summary.Earnings)
}

func TestSummarize_EmptyComponents(t *testing.T) {
	run := payrun.StaffPayRun{BasedAnnualCTC: dec(1200000)}

	summary := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, decimal.Zero, summary.Earnings)
	assertDecimalEqual(t, decimal.Zero, summary.Deductions)
	assertDecimalEqual(t, decimal.Zero, summary.NetPay)
}

func TestSummarize_ZeroAndNegativeCTC(t *testing.T) {
	components := []payrun.PayRunComponent{
		{
			SalaryComponentsID: 1,
			Percentage:         nd(50),
			IsBasedOnAnnualCTC: true,
			ComponentType:      catalog.ComponentTypeEarning,
		},
	}

	zero := payrun.Summarize(
		payrun.StaffPayRun{BasedAnnualCTC: decimal.Zero, Components: components},
		catalog.Snapshot{},
		payrun.DefaultBasicPayComponentID,
	)
	assertDecimalEqual(t, decimal.Zero, zero.NetPay)

	negative := payrun.Summarize(
		payrun.StaffPayRun{BasedAnnualCTC: dec(-1200000), Components: components},
		catalog.Snapshot{},
		payrun.DefaultBasicPayComponentID,
	)
	assertDecimalEqual(t, dec(-50000), negative.NetPay)
}

func TestSummarize_Idempotent(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 1,
				Percentage:         nd(50),
				IsBasedOnAnnualCTC: true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
			{
				SalaryComponentsID: 30,
				Amount:             nd(1800),
				ComponentType:      catalog.ComponentTypeDeduction,
			},
		},
	}

	first := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)
	second := payrun.Summarize(run, catalog.Snapshot{}, payrun.DefaultBasicPayComponentID)

	assertDecimalEqual(t, first.Earnings, second.Earnings)
	assertDecimalEqual(t, first.Deductions, second.Deductions)
	assertDecimalEqual(t, first.NetPay, second.NetPay)
}

func TestSummarize_ConfigurableBasisComponent(t *testing.T) {
	run := payrun.StaffPayRun{
		BasedAnnualCTC: dec(1200000),
		Components: []payrun.PayRunComponent{
			{
				SalaryComponentsID: 99,
				Percentage:         nd(50),
				IsBasedOnAnnualCTC: true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
			{
				SalaryComponentsID: 20,
				Percentage:         nd(20),
				IsBasedOnBasicPay:  true,
				ComponentType:      catalog.ComponentTypeEarning,
			},
		},
	}

	summary := payrun.Summarize(run, catalog.Snapshot{}, 99)

	assertDecimalEqual(t, dec(60000), summary.Earnings)
}
