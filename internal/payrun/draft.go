package payrun

import (
	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/template"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// BuildDraft projects a staff member's salary template into a draft pay
// run for one period. It never mutates the template or the catalog, and it
// performs no validation of the annual CTC: a zero or negative CTC simply
// flows through into zero or negative derived values.
func BuildDraft(
	tmpl template.SalaryTemplate,
	snap catalog.Snapshot,
	payrollMonth, payrollYear string,
	notes *string,
) StaffPayRun {
	return StaffPayRun{
		SchoolID:           tmpl.SchoolID,
		BaseTemplateID:     tmpl.BaseTemplateID,
		SalaryTemplateID:   tmpl.ID,
		StaffEnrollmentsID: tmpl.StaffEnrollmentsID,
		PayrollMonth:       payrollMonth,
		PayrollYear:        payrollYear,
		TemplateName:       tmpl.TemplateName,
		TemplateCode:       tmpl.TemplateCode,
		BasedAnnualCTC:     tmpl.AnnualCTC,
		TotalPayroll:       tmpl.AnnualCTC.Div(monthsPerYear),
		Notes:              notes,
		Status:             StatusDraft,
		Components:         ResolveComponents(tmpl.Components, snap),
	}
}
