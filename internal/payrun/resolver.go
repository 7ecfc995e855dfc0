package payrun

import (
	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/template"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const unknownComponentName = "Unknown Component"

// unknownComponent is the fallback for a template reference whose catalog
// entry no longer exists (stale template after a component delete). The
// line stays visible on the payslip instead of breaking the whole draft.
func unknownComponent() catalog.SalaryComponent {
	return catalog.SalaryComponent{
		ComponentName:      unknownComponentName,
		ComponentType:      catalog.ComponentTypeEarning,
		IsActive:           false,
		IsBasedOnAnnualCTC: false,
	}
}

// ResolveComponents merges each template reference with its catalog entry,
// producing the payroll lines of a draft in template order.
//
// Per-staff overrides win: amount and percentage come from the template
// reference, never the catalog defaults. The percentage basis and the
// component type are catalog-owned and cannot be overridden per staff.
func ResolveComponents(refs []template.SalaryTemplateComponent, snap catalog.Snapshot) []PayRunComponent {
	components := make([]PayRunComponent, 0, len(refs))

	for i, ref := range refs {
		details, ok := snap.Lookup(ref.SalaryComponentsID)
		if !ok {
			zap.L().Warn("salary template references missing catalog component",
				zap.Int64("salary_components_id", ref.SalaryComponentsID),
			)
			details = unknownComponent()
		}

		percentage := decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
		if ref.Percentage.Valid {
			percentage = ref.Percentage
		}

		components = append(components, PayRunComponent{
			SalaryComponentsID: ref.SalaryComponentsID,
			PayslipName:        details.PayslipName(),
			Amount:             ref.Amount,
			Percentage:         percentage,
			IsBasedOnAnnualCTC: details.IsBasedOnAnnualCTC,
			IsBasedOnBasicPay:  !details.IsBasedOnAnnualCTC,
			ComponentType:      details.ComponentType,
			IsModified:         false,
			SortOrder:          i,
		})
	}

	return components
}
