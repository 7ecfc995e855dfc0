package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ComponentTypeEarning   = "earning"
	ComponentTypeDeduction = "deduction"
	ComponentTypeBenefit   = "benefit"

	CalculationFlatAmount = "flat_amount"
	CalculationPercentage = "percentage"
)

type SalaryComponent struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement"`
	SchoolID           uuid.UUID           `gorm:"type:uuid;not null;index:idx_component_school"`
	ComponentName      string              `gorm:"type:varchar(120);not null"`
	ComponentType      string              `gorm:"type:varchar(20);not null"`
	CalculationMethod  string              `gorm:"type:varchar(20);not null"`
	Amount             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Percentage         decimal.NullDecimal `gorm:"type:numeric(7,4)"`
	IsBasedOnAnnualCTC bool                `gorm:"column:is_based_on_annual_ctc;not null;default:false"`

	// Display override on payslips; falls back to ComponentName when empty.
	NameInPayslip *string `gorm:"type:varchar(120)"`

	// Statutory flags, carried through to payslips but never computed over here.
	IsTaxable          bool `gorm:"not null;default:false"`
	ConsiderForEPF     bool `gorm:"column:consider_for_epf;not null;default:false"`
	ConsiderForESI     bool `gorm:"column:consider_for_esi;not null;default:false"`
	ConsiderForESIC    bool `gorm:"column:consider_for_esic;not null;default:false"`
	ProRataCalculation bool `gorm:"not null;default:false"`

	IsActive                   bool `gorm:"not null;default:true"`
	IsMandatory                bool `gorm:"not null;default:false"`
	IsMandatoryForAllTemplates bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// PayslipName is the display name a resolved payroll line carries.
func (c SalaryComponent) PayslipName() string {
	if c.NameInPayslip != nil && *c.NameInPayslip != "" {
		return *c.NameInPayslip
	}
	return c.ComponentName
}

// Snapshot is an immutable read of one school's catalog keyed by component id.
// Resolution and summary calculation take it as a plain parameter so they
// stay deterministic under test.
type Snapshot map[int64]SalaryComponent

func NewSnapshot(components []SalaryComponent) Snapshot {
	snap := make(Snapshot, len(components))
	for _, c := range components {
		snap[c.ID] = c
	}
	return snap
}

func (s Snapshot) Lookup(id int64) (SalaryComponent, bool) {
	c, ok := s[id]
	return c, ok
}
