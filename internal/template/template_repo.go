package template

import (
	"context"
	"database/sql"

	"github.com/shilpmis/saral-payroll/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, tmpl *SalaryTemplate) error
	FindAllBySchool(ctx context.Context, schoolID string) ([]SalaryTemplate, error)
	FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*SalaryTemplate, error)
	FindByStaff(ctx context.Context, schoolID string, staffEnrollmentsID int64) (*SalaryTemplate, error)
	Update(ctx context.Context, tmpl *SalaryTemplate) error
	ReplaceComponents(ctx context.Context, templateID int64, components []SalaryTemplateComponent) error
	Delete(ctx context.Context, schoolID string, id int64) error
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

func (r *repository) Create(ctx context.Context, tmpl *SalaryTemplate) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string) ([]SalaryTemplate, error) {
	var templates []SalaryTemplate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("id ASC").
		Find(&templates).Error
	return templates, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*SalaryTemplate, error) {
	var tmpl SalaryTemplate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&tmpl, "id = ?", id).Error
	return &tmpl, err
}

func (r *repository) FindByStaff(ctx context.Context, schoolID string, staffEnrollmentsID int64) (*SalaryTemplate, error) {
	var tmpl SalaryTemplate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("id DESC").
		First(&tmpl, "staff_enrollments_id = ?", staffEnrollmentsID).Error
	return &tmpl, err
}

func (r *repository) Update(ctx context.Context, tmpl *SalaryTemplate) error {
	return r.db.WithContext(ctx).Omit("Components").Save(tmpl).Error
}

func (r *repository) ReplaceComponents(ctx context.Context, templateID int64, components []SalaryTemplateComponent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salary_template_id = ?", templateID).
			Delete(&SalaryTemplateComponent{}).Error; err != nil {
			return err
		}
		for i := range components {
			components[i].ID = 0
			components[i].SalaryTemplateID = templateID
		}
		if len(components) == 0 {
			return nil
		}
		return tx.Create(&components).Error
	})
}

func (r *repository) Delete(ctx context.Context, schoolID string, id int64) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&SalaryTemplate{}, "id = ?", id).Error
}
