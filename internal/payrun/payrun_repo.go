package payrun

import (
	"context"
	"database/sql"

	"github.com/shilpmis/saral-payroll/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *StaffPayRun) error
	FindAllBySchool(ctx context.Context, schoolID string, filter GetPayRunsFilterRequest) ([]StaffPayRun, int64, error)
	FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*StaffPayRun, error)
	Update(ctx context.Context, run *StaffPayRun) error
	ReplaceComponents(ctx context.Context, payRunID int64, components []PayRunComponent) error
	Delete(ctx context.Context, schoolID string, id int64) error
	ExistsForPeriod(ctx context.Context, schoolID string, staffEnrollmentsID int64, month, year string) (bool, error)
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

func (r *repository) Create(ctx context.Context, run *StaffPayRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindAllBySchool(
	ctx context.Context,
	schoolID string,
	filter GetPayRunsFilterRequest,
) ([]StaffPayRun, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&StaffPayRun{}).
		Scopes(tenant.Scope(schoolID))

	if filter.PayrollMonth != "" {
		db = db.Where("payroll_month = ?", filter.PayrollMonth)
	}
	if filter.PayrollYear != "" {
		db = db.Where("payroll_year = ?", filter.PayrollYear)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.StaffEnrollmentsID > 0 {
		db = db.Where("staff_enrollments_id = ?", filter.StaffEnrollmentsID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var runs []StaffPayRun
	err := db.
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&runs).Error

	return runs, total, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*StaffPayRun, error) {
	var run StaffPayRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&run, "id = ?", id).Error
	return &run, err
}

func (r *repository) Update(ctx context.Context, run *StaffPayRun) error {
	return r.db.WithContext(ctx).
		Omit("Components").
		Save(run).Error
}

// ReplaceComponents swaps the full component set of a pay run. Runs in its
// own transaction so a partial replace never leaves the run half-written.
func (r *repository) ReplaceComponents(ctx context.Context, payRunID int64, components []PayRunComponent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("pay_run_id = ?", payRunID).
			Delete(&PayRunComponent{}).Error; err != nil {
			return err
		}

		if len(components) == 0 {
			return nil
		}

		for i := range components {
			components[i].ID = 0
			components[i].PayRunID = payRunID
		}
		return tx.Create(&components).Error
	})
}

func (r *repository) Delete(ctx context.Context, schoolID string, id int64) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&StaffPayRun{}, "id = ?", id).Error
}

func (r *repository) ExistsForPeriod(
	ctx context.Context,
	schoolID string,
	staffEnrollmentsID int64,
	month, year string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&StaffPayRun{}).
		Scopes(tenant.Scope(schoolID)).
		Where("staff_enrollments_id = ?", staffEnrollmentsID).
		Where("payroll_month = ?", month).
		Where("payroll_year = ?", year).
		Count(&count).Error
	return count > 0, err
}
