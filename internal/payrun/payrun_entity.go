package payrun

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft         = "draft"
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusPartiallyPaid = "partially_paid"
	StatusPaid          = "paid"
	StatusFailed        = "failed"
	StatusCancelled     = "cancelled"
	StatusOnHold        = "on_hold"
)

// ValidStatus reports whether s is one of the recognised pay run statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusProcessing, StatusPartiallyPaid,
		StatusPaid, StatusFailed, StatusCancelled, StatusOnHold:
		return true
	}
	return false
}

// StaffPayRun is one staff member's payslip for one payroll period.
// Once Status is paid the record is immutable; every mutating service
// path checks that before touching the repository.
type StaffPayRun struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	SchoolID           uuid.UUID `gorm:"type:uuid;not null;index:idx_payrun_school_status"`
	BaseTemplateID     int64     `gorm:"not null;default:0"`
	SalaryTemplateID   int64     `gorm:"not null;index"`
	StaffEnrollmentsID int64     `gorm:"not null;index:idx_payrun_staff_period"`

	PayrollMonth string `gorm:"type:varchar(2);not null;index:idx_payrun_staff_period"`
	PayrollYear  string `gorm:"type:varchar(4);not null;index:idx_payrun_staff_period"`

	TemplateName string `gorm:"type:varchar(120);not null"`
	TemplateCode string `gorm:"type:varchar(40);not null"`

	// TotalPayroll is fixed at creation time (annual CTC / 12); it is not
	// recomputed when components change. The live figure comes from the
	// summary calculator.
	BasedAnnualCTC decimal.Decimal `gorm:"column:based_annual_ctc;type:numeric(14,2);not null"`
	TotalPayroll   decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	Notes  *string `gorm:"type:text"`
	Status string  `gorm:"type:varchar(20);not null;default:'draft';index:idx_payrun_school_status"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt          time.Time
	UpdatedAt          time.Time
	PaidAt             *time.Time `gorm:"index"`
	PayslipURL         *string
	PayslipGeneratedAt *time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	Components []PayRunComponent `gorm:"foreignKey:PayRunID"`
}

// PayRunComponent is a resolved payroll line: a template reference merged
// with the catalog metadata it pointed at when the draft was built.
type PayRunComponent struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement"`
	PayRunID           int64               `gorm:"not null;index"`
	SalaryComponentsID int64               `gorm:"column:salary_components_id;not null"`
	PayslipName        string              `gorm:"type:varchar(120);not null"`
	Amount             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Percentage         decimal.NullDecimal `gorm:"type:numeric(7,4)"`
	IsBasedOnAnnualCTC bool                `gorm:"column:is_based_on_annual_ctc;not null;default:false"`
	IsBasedOnBasicPay  bool                `gorm:"not null;default:false"`
	ComponentType      string              `gorm:"type:varchar(20);not null"`
	IsModified         bool                `gorm:"not null;default:false"`
	SortOrder          int                 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
