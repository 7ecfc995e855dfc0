package payrun_test

import (
	"testing"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/payrun"
	"github.com/shilpmis/saral-payroll/internal/template"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string {
	return &v
}

func TestResolveComponents_MergesCatalogDetails(t *testing.T) {
	snap := catalog.NewSnapshot([]catalog.SalaryComponent{
		{
			ID:                 1,
			ComponentName:      "Basic Pay",
			ComponentType:      catalog.ComponentTypeEarning,
			IsBasedOnAnnualCTC: true,
			IsActive:           true,
		},
		{
			ID:            30,
			ComponentName: "Professional Tax",
			NameInPayslip: strPtr("Prof. Tax"),
			ComponentType: catalog.ComponentTypeDeduction,
			IsActive:      true,
		},
	})

	refs := []template.SalaryTemplateComponent{
		{SalaryComponentsID: 1, Percentage: nd(50)},
		{SalaryComponentsID: 30, Amount: nd(200)},
	}

	resolved := payrun.ResolveComponents(refs, snap)

	assert.Len(t, resolved, 2)

	basic := resolved[0]
	assert.Equal(t, int64(1), basic.SalaryComponentsID)
	assert.Equal(t, "Basic Pay", basic.PayslipName)
	assert.True(t, basic.IsBasedOnAnnualCTC)
	assert.False(t, basic.IsBasedOnBasicPay)
	assert.Equal(t, catalog.ComponentTypeEarning, basic.ComponentType)
	assert.False(t, basic.IsModified)
	assert.Equal(t, 0, basic.SortOrder)
	assertDecimalEqual(t, dec(50), basic.Percentage.Decimal)

	tax := resolved[1]
	assert.Equal(t, "Prof. Tax", tax.PayslipName)
	assert.False(t, tax.IsBasedOnAnnualCTC)
	assert.True(t, tax.IsBasedOnBasicPay)
	assert.Equal(t, catalog.ComponentTypeDeduction, tax.ComponentType)
	assert.Equal(t, 1, tax.SortOrder)
	assertDecimalEqual(t, dec(200), tax.Amount.Decimal)
}

func TestResolveComponents_UnknownComponentFallback(t *testing.T) {
	refs := []template.SalaryTemplateComponent{
		{SalaryComponentsID: 777, Amount: nd(1000)},
	}

	resolved := payrun.ResolveComponents(refs, catalog.Snapshot{})

	assert.Len(t, resolved, 1)
	assert.Equal(t, "Unknown Component", resolved[0].PayslipName)
	assert.Equal(t, catalog.ComponentTypeEarning, resolved[0].ComponentType)
	assert.Equal(t, int64(777), resolved[0].SalaryComponentsID)
	assertDecimalEqual(t, dec(1000), resolved[0].Amount.Decimal)
}

func TestResolveComponents_PercentageDefaultsToZero(t *testing.T) {
	snap := catalog.NewSnapshot([]catalog.SalaryComponent{
		{ID: 30, ComponentName: "PF", ComponentType: catalog.ComponentTypeDeduction, IsActive: true},
	})
	refs := []template.SalaryTemplateComponent{
		{SalaryComponentsID: 30, Amount: nd(1800)},
	}

	resolved := payrun.ResolveComponents(refs, snap)

	assert.True(t, resolved[0].Percentage.Valid)
	assertDecimalEqual(t, decimal.Zero, resolved[0].Percentage.Decimal)
}

func TestResolveComponents_Empty(t *testing.T) {
	resolved := payrun.ResolveComponents(nil, catalog.Snapshot{})
	assert.Empty(t, resolved)
}
