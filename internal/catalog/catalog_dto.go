package catalog

import "github.com/shopspring/decimal"

type CreateSalaryComponentRequest struct {
	ComponentName              string           `json:"component_name" binding:"required"`
	ComponentType              string           `json:"component_type" binding:"required,oneof=earning deduction benefit"`
	CalculationMethod          string           `json:"calculation_method" binding:"required,oneof=flat_amount percentage"`
	Amount                     *decimal.Decimal `json:"amount"`
	Percentage                 *decimal.Decimal `json:"percentage"`
	IsBasedOnAnnualCTC         bool             `json:"is_based_on_annual_ctc"`
	NameInPayslip              *string          `json:"name_in_payslip"`
	IsTaxable                  bool             `json:"is_taxable"`
	ConsiderForEPF             bool             `json:"consider_for_epf"`
	ConsiderForESI             bool             `json:"consider_for_esi"`
	ConsiderForESIC            bool             `json:"consider_for_esic"`
	ProRataCalculation         bool             `json:"pro_rata_calculation"`
	IsActive                   *bool            `json:"is_active"`
	IsMandatory                bool             `json:"is_mandatory"`
	IsMandatoryForAllTemplates bool             `json:"is_mandatory_for_all_templates"`
}

type UpdateSalaryComponentRequest struct {
	ComponentName              string           `json:"component_name" binding:"required"`
	ComponentType              string           `json:"component_type" binding:"required,oneof=earning deduction benefit"`
	CalculationMethod          string           `json:"calculation_method" binding:"required,oneof=flat_amount percentage"`
	Amount                     *decimal.Decimal `json:"amount"`
	Percentage                 *decimal.Decimal `json:"percentage"`
	IsBasedOnAnnualCTC         bool             `json:"is_based_on_annual_ctc"`
	NameInPayslip              *string          `json:"name_in_payslip"`
	IsTaxable                  bool             `json:"is_taxable"`
	ConsiderForEPF             bool             `json:"consider_for_epf"`
	ConsiderForESI             bool             `json:"consider_for_esi"`
	ConsiderForESIC            bool             `json:"consider_for_esic"`
	ProRataCalculation         bool             `json:"pro_rata_calculation"`
	IsActive                   *bool            `json:"is_active"`
	IsMandatory                bool             `json:"is_mandatory"`
	IsMandatoryForAllTemplates bool             `json:"is_mandatory_for_all_templates"`
}

type GetSalaryComponentsFilterRequest struct {
	ActiveOnly bool `form:"active_only"`
}

type SalaryComponentResponse struct {
	ID                         int64            `json:"id"`
	ComponentName              string           `json:"component_name"`
	ComponentType              string           `json:"component_type"`
	CalculationMethod          string           `json:"calculation_method"`
	Amount                     *decimal.Decimal `json:"amount"`
	Percentage                 *decimal.Decimal `json:"percentage"`
	IsBasedOnAnnualCTC         bool             `json:"is_based_on_annual_ctc"`
	NameInPayslip              *string          `json:"name_in_payslip"`
	IsTaxable                  bool             `json:"is_taxable"`
	ConsiderForEPF             bool             `json:"consider_for_epf"`
	ConsiderForESI             bool             `json:"consider_for_esi"`
	ConsiderForESIC            bool             `json:"consider_for_esic"`
	ProRataCalculation         bool             `json:"pro_rata_calculation"`
	IsActive                   bool             `json:"is_active"`
	IsMandatory                bool             `json:"is_mandatory"`
	IsMandatoryForAllTemplates bool             `json:"is_mandatory_for_all_templates"`
}
