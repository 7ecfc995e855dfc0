package catalog

import (
	"context"
	"database/sql"

	"github.com/shilpmis/saral-payroll/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, component *SalaryComponent) error
	FindAllBySchool(ctx context.Context, schoolID string, activeOnly bool) ([]SalaryComponent, error)
	FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*SalaryComponent, error)
	Update(ctx context.Context, component *SalaryComponent) error
	Delete(ctx context.Context, schoolID string, id int64) error
	IsReferencedByTemplates(ctx context.Context, schoolID string, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string, activeOnly bool) ([]SalaryComponent, error) {
	var components []SalaryComponent
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Order("id ASC")
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Find(&components).Error
	return components, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*SalaryComponent, error) {
	var component SalaryComponent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&component, "id = ?", id).Error
	return &component, err
}

func (r *repository) Update(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) Delete(ctx context.Context, schoolID string, id int64) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&SalaryComponent{}, "id = ?", id).Error
}

func (r *repository) IsReferencedByTemplates(ctx context.Context, schoolID string, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("salary_template_components").
		Joins("JOIN salary_templates ON salary_templates.id = salary_template_components.salary_template_id").
		Where("salary_templates.school_id = ?", schoolID).
		Where("salary_template_components.salary_components_id = ?", id).
		Where("salary_templates.deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
