package template

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalaryTemplate struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	SchoolID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_template_school"`
	BaseTemplateID     int64           `gorm:"not null;default:0"`
	StaffEnrollmentsID int64           `gorm:"not null;index"`
	TemplateName       string          `gorm:"type:varchar(120);not null"`
	TemplateCode       string          `gorm:"type:varchar(40);not null"`
	AnnualCTC          decimal.Decimal `gorm:"column:annual_ctc;type:numeric(14,2);not null"`
	Description        *string         `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Components []SalaryTemplateComponent `gorm:"foreignKey:SalaryTemplateID"`
}

// SalaryTemplateComponent is a per-staff reference into the component
// catalog. Exactly one of Amount/Percentage is meaningful, matching the
// referenced component's calculation method; the other stays null.
type SalaryTemplateComponent struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement"`
	SalaryTemplateID   int64               `gorm:"not null;index"`
	SalaryComponentsID int64               `gorm:"column:salary_components_id;not null"`
	Amount             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Percentage         decimal.NullDecimal `gorm:"type:numeric(7,4)"`
	SortOrder          int                 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
