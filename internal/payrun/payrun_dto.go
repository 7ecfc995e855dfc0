package payrun

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayRunRequest struct {
	StaffEnrollmentsID int64  `json:"staff_enrollments_id" binding:"required,gt=0"`
	PayrollMonth       string `json:"payroll_month" binding:"required,len=2"`
	PayrollYear        string `json:"payroll_year" binding:"required,len=4"`
	Notes              string `json:"notes" binding:"omitempty,max=500"`
}

type UpdatePayRunComponentInput struct {
	SalaryComponentsID int64            `json:"salary_components_id" binding:"required,gt=0"`
	Amount             *decimal.Decimal `json:"amount" binding:"omitempty"`
	Percentage         *decimal.Decimal `json:"percentage" binding:"omitempty"`
}

type UpdatePayRunRequest struct {
	Notes      *string                      `json:"notes" binding:"omitempty,max=500"`
	Status     *string                      `json:"status" binding:"omitempty"`
	Components []UpdatePayRunComponentInput `json:"payroll_components" binding:"omitempty,dive"`
}

type GetPayRunsFilterRequest struct {
	PayrollMonth       string `form:"payroll_month" binding:"omitempty,len=2"`
	PayrollYear        string `form:"payroll_year" binding:"omitempty,len=4"`
	Status             string `form:"status" binding:"omitempty"`
	StaffEnrollmentsID int64  `form:"staff_enrollments_id" binding:"omitempty,gt=0"`
	Page               int    `form:"page" binding:"omitempty,gte=1"`
	Limit              int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// PayRunComponentPayload is the wire shape of a pay run line. The
// based_anual_ctc and is_modofied spellings are load-bearing: the mobile
// and web clients already parse these keys, so they stay misspelled.
type PayRunComponentPayload struct {
	SalaryComponentsID int64               `json:"salary_components_id"`
	PayslipName        string              `json:"payslip_name"`
	Amount             *decimal.Decimal    `json:"amount"`
	Percentage         *decimal.Decimal    `json:"percentage"`
	IsBasedOnAnnualCTC bool                `json:"is_based_on_annual_ctc"`
	IsBasedOnBasicPay  bool                `json:"is_based_on_basic_pay"`
	ComponentType      string              `json:"component_type"`
	IsModified         bool                `json:"is_modofied"`
	SortOrder          int                 `json:"sort_order"`
}

type PayRunResponse struct {
	ID                 int64                    `json:"id"`
	SchoolID           string                   `json:"school_id"`
	BaseTemplateID     int64                    `json:"base_template_id"`
	SalaryTemplateID   int64                    `json:"salary_template_id"`
	StaffEnrollmentsID int64                    `json:"staff_enrollments_id"`
	PayrollMonth       string                   `json:"payroll_month"`
	PayrollYear        string                   `json:"payroll_year"`
	TemplateName       string                   `json:"template_name"`
	TemplateCode       string                   `json:"template_code"`
	BasedAnnualCTC     decimal.Decimal          `json:"based_anual_ctc"`
	TotalPayroll       decimal.Decimal          `json:"total_payroll"`
	Notes              string                   `json:"notes"`
	Status             string                   `json:"status"`
	PaidAt             *time.Time               `json:"paid_at"`
	PayslipURL         *string                  `json:"payslip_url"`
	Components         []PayRunComponentPayload `json:"payroll_components"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

type ResolvedComponentResponse struct {
	Components []PayRunComponentPayload `json:"payroll_components"`
}
