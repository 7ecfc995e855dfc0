package catalog_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	catalogerrors "github.com/shilpmis/saral-payroll/internal/catalog/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeCatalogRepository struct {
	withTxFn                  func(tx *sql.Tx) catalog.Repository
	createFn                  func(ctx context.Context, component *catalog.SalaryComponent) error
	findAllBySchoolFn         func(ctx context.Context, schoolID string, activeOnly bool) ([]catalog.SalaryComponent, error)
	findByIDAndSchoolFn       func(ctx context.Context, schoolID string, id int64) (*catalog.SalaryComponent, error)
	updateFn                  func(ctx context.Context, component *catalog.SalaryComponent) error
	deleteFn                  func(ctx context.Context, schoolID string, id int64) error
	isReferencedByTemplatesFn func(ctx context.Context, schoolID string, id int64) (bool, error)
}

func (f *fakeCatalogRepository) WithTx(tx *sql.Tx) catalog.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeCatalogRepository) Create(ctx context.Context, component *catalog.SalaryComponent) error {
	if f.createFn != nil {
		return f.createFn(ctx, component)
	}
	return nil
}

func (f *fakeCatalogRepository) FindAllBySchool(ctx context.Context, schoolID string, activeOnly bool) ([]catalog.SalaryComponent, error) {
	if f.findAllBySchoolFn != nil {
		return f.findAllBySchoolFn(ctx, schoolID, activeOnly)
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*catalog.SalaryComponent, error) {
	if f.findByIDAndSchoolFn != nil {
		return f.findByIDAndSchoolFn(ctx, schoolID, id)
	}
	return &catalog.SalaryComponent{ID: id}, nil
}

func (f *fakeCatalogRepository) Update(ctx context.Context, component *catalog.SalaryComponent) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, component)
	}
	return nil
}

func (f *fakeCatalogRepository) Delete(ctx context.Context, schoolID string, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, schoolID, id)
	}
	return nil
}

func (f *fakeCatalogRepository) IsReferencedByTemplates(ctx context.Context, schoolID string, id int64) (bool, error) {
	if f.isReferencedByTemplatesFn != nil {
		return f.isReferencedByTemplatesFn(ctx, schoolID, id)
	}
	return false, nil
}

type catalogServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service catalog.Service
	repo    *fakeCatalogRepository
}

func setupCatalogServiceTest(t *testing.T) *catalogServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeCatalogRepository{}
	svc := catalog.NewService(db, repo, nil)

	return &catalogServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCatalogService_Create(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	deps := setupCatalogServiceTest(t)
	defer deps.db.Close()

	deps.repo.createFn = func(ctx context.Context, component *catalog.SalaryComponent) error {
		component.ID = 10
		assert.Equal(t, "HRA", component.ComponentName)
		assert.True(t, component.Percentage.Valid)
		assert.True(t, component.IsActive)
		return nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Create(ctx, schoolID, catalog.CreateSalaryComponentRequest{
		ComponentName:      "HRA",
		ComponentType:      catalog.ComponentTypeEarning,
		CalculationMethod:  catalog.CalculationPercentage,
		Percentage:         decPtr(40),
		IsBasedOnAnnualCTC: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.True(t, resp.IsActive)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCatalogService_Create_ValueMismatch(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	deps := setupCatalogServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Create(ctx, schoolID, catalog.CreateSalaryComponentRequest{
		ComponentName:     "Transport",
		ComponentType:     catalog.ComponentTypeEarning,
		CalculationMethod: catalog.CalculationFlatAmount,
		Percentage:        decPtr(10),
	})
	assert.ErrorIs(t, err, catalogerrors.ErrAmountRequired)

	expectTx(t, deps.sqlMock, false)
	_, err = deps.service.Create(ctx, schoolID, catalog.CreateSalaryComponentRequest{
		ComponentName:     "HRA",
		ComponentType:     catalog.ComponentTypeEarning,
		CalculationMethod: catalog.CalculationPercentage,
		Percentage:        decPtr(120),
	})
	assert.ErrorIs(t, err, catalogerrors.ErrPercentageOutOfRange)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCatalogService_Delete_MandatoryComponent(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	deps := setupCatalogServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*catalog.SalaryComponent, error) {
		return &catalog.SalaryComponent{ID: id, IsMandatory: true}, nil
	}

	expectTx(t, deps.sqlMock, false)
	err := deps.service.Delete(ctx, schoolID, 1)

	assert.ErrorIs(t, err, catalogerrors.ErrComponentMandatory)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCatalogService_Delete_ReferencedByTemplate(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	deps := setupCatalogServiceTest(t)
	defer deps.db.Close()

	deps.repo.isReferencedByTemplatesFn = func(ctx context.Context, sid string, id int64) (bool, error) {
		return true, nil
	}

	expectTx(t, deps.sqlMock, false)
	err := deps.service.Delete(ctx, schoolID, 10)

	assert.ErrorIs(t, err, catalogerrors.ErrComponentInUse)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCatalogService_GetAll_ActiveOnly(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	deps := setupCatalogServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllBySchoolFn = func(ctx context.Context, sid string, activeOnly bool) ([]catalog.SalaryComponent, error) {
		return []catalog.SalaryComponent{
			{ID: 1, ComponentName: "Basic Pay", IsActive: true},
			{ID: 2, ComponentName: "Old Allowance", IsActive: false},
		}, nil
	}

	resp, err := deps.service.GetAll(ctx, schoolID, catalog.GetSalaryComponentsFilterRequest{ActiveOnly: true})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Basic Pay", resp[0].ComponentName)
}

func TestCatalogService_Snapshot(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	deps := setupCatalogServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllBySchoolFn = func(ctx context.Context, sid string, activeOnly bool) ([]catalog.SalaryComponent, error) {
		return []catalog.SalaryComponent{
			{ID: 1, ComponentName: "Basic Pay", IsActive: true},
			{ID: 30, ComponentName: "Provident Fund", IsActive: true},
		}, nil
	}

	snap, err := deps.service.Snapshot(ctx, schoolID)

	assert.NoError(t, err)
	assert.Len(t, snap, 2)

	component, ok := snap.Lookup(30)
	assert.True(t, ok)
	assert.Equal(t, "Provident Fund", component.ComponentName)

	_, ok = snap.Lookup(999)
	assert.False(t, ok)
}
