package template

import "github.com/shopspring/decimal"

type TemplateComponentInput struct {
	SalaryComponentsID int64            `json:"salary_components_id" binding:"required"`
	Amount             *decimal.Decimal `json:"amount"`
	Percentage         *decimal.Decimal `json:"percentage"`
}

type CreateSalaryTemplateRequest struct {
	BaseTemplateID     int64                    `json:"base_template_id"`
	StaffEnrollmentsID int64                    `json:"staff_enrollments_id" binding:"required"`
	TemplateName       string                   `json:"template_name" binding:"required"`
	TemplateCode       string                   `json:"template_code" binding:"required"`
	AnnualCTC          decimal.Decimal          `json:"annual_ctc" binding:"required"`
	Description        *string                  `json:"description"`
	Components         []TemplateComponentInput `json:"template_components" binding:"required,min=1,dive"`
}

type UpdateSalaryTemplateRequest struct {
	TemplateName string                   `json:"template_name" binding:"required"`
	TemplateCode string                   `json:"template_code" binding:"required"`
	AnnualCTC    decimal.Decimal          `json:"annual_ctc" binding:"required"`
	Description  *string                  `json:"description"`
	Components   []TemplateComponentInput `json:"template_components" binding:"required,min=1,dive"`
}

type TemplateComponentResponse struct {
	SalaryComponentsID int64            `json:"salary_components_id"`
	Amount             *decimal.Decimal `json:"amount"`
	Percentage         *decimal.Decimal `json:"percentage"`
}

type SalaryTemplateResponse struct {
	ID                 int64                       `json:"id"`
	BaseTemplateID     int64                       `json:"base_template_id"`
	StaffEnrollmentsID int64                       `json:"staff_enrollments_id"`
	TemplateName       string                      `json:"template_name"`
	TemplateCode       string                      `json:"template_code"`
	AnnualCTC          decimal.Decimal             `json:"annual_ctc"`
	Description        *string                     `json:"description"`
	Components         []TemplateComponentResponse `json:"template_components"`
}
