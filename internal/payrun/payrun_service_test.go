package payrun_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/events"
	"github.com/shilpmis/saral-payroll/internal/messaging/kafka"
	"github.com/shilpmis/saral-payroll/internal/payrun"
	payrunerrors "github.com/shilpmis/saral-payroll/internal/payrun/errors"
	"github.com/shilpmis/saral-payroll/internal/template"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayRunRepository struct {
	withTxFn            func(tx *sql.Tx) payrun.Repository
	createFn            func(ctx context.Context, run *payrun.StaffPayRun) error
	findAllBySchoolFn   func(ctx context.Context, schoolID string, filter payrun.GetPayRunsFilterRequest) ([]payrun.StaffPayRun, int64, error)
	findByIDAndSchoolFn func(ctx context.Context, schoolID string, id int64) (*payrun.StaffPayRun, error)
	updateFn            func(ctx context.Context, run *payrun.StaffPayRun) error
	replaceComponentsFn func(ctx context.Context, payRunID int64, components []payrun.PayRunComponent) error
	deleteFn            func(ctx context.Context, schoolID string, id int64) error
	existsForPeriodFn   func(ctx context.Context, schoolID string, staffEnrollmentsID int64, month, year string) (bool, error)
}

func (f *fakePayRunRepository) WithTx(tx *sql.Tx) payrun.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayRunRepository) Create(ctx context.Context, run *payrun.StaffPayRun) error {
	if f.createFn != nil {
		return f.createFn(ctx, run)
	}
	return nil
}

func (f *fakePayRunRepository) FindAllBySchool(ctx context.Context, schoolID string, filter payrun.GetPayRunsFilterRequest) ([]payrun.StaffPayRun, int64, error) {
	if f.findAllBySchoolFn != nil {
		return f.findAllBySchoolFn(ctx, schoolID, filter)
	}
	return nil, 0, nil
}

func (f *fakePayRunRepository) FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*payrun.StaffPayRun, error) {
	if f.findByIDAndSchoolFn != nil {
		return f.findByIDAndSchoolFn(ctx, schoolID, id)
	}
	return &payrun.StaffPayRun{ID: id}, nil
}

func (f *fakePayRunRepository) Update(ctx context.Context, run *payrun.StaffPayRun) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, run)
	}
	return nil
}

func (f *fakePayRunRepository) ReplaceComponents(ctx context.Context, payRunID int64, components []payrun.PayRunComponent) error {
	if f.replaceComponentsFn != nil {
		return f.replaceComponentsFn(ctx, payRunID, components)
	}
	return nil
}

func (f *fakePayRunRepository) Delete(ctx context.Context, schoolID string, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, schoolID, id)
	}
	return nil
}

func (f *fakePayRunRepository) ExistsForPeriod(ctx context.Context, schoolID string, staffEnrollmentsID int64, month, year string) (bool, error) {
	if f.existsForPeriodFn != nil {
		return f.existsForPeriodFn(ctx, schoolID, staffEnrollmentsID, month, year)
	}
	return false, nil
}

type fakeTemplateRepository struct {
	findByStaffFn       func(ctx context.Context, schoolID string, staffEnrollmentsID int64) (*template.SalaryTemplate, error)
	findByIDAndSchoolFn func(ctx context.Context, schoolID string, id int64) (*template.SalaryTemplate, error)
}

func (f *fakeTemplateRepository) WithTx(tx *sql.Tx) template.Repository { return f }

func (f *fakeTemplateRepository) Create(ctx context.Context, tmpl *template.SalaryTemplate) error {
	return nil
}

func (f *fakeTemplateRepository) FindAllBySchool(ctx context.Context, schoolID string) ([]template.SalaryTemplate, error) {
	return nil, nil
}

func (f *fakeTemplateRepository) FindByIDAndSchool(ctx context.Context, schoolID string, id int64) (*template.SalaryTemplate, error) {
	if f.findByIDAndSchoolFn != nil {
		return f.findByIDAndSchoolFn(ctx, schoolID, id)
	}
	return &template.SalaryTemplate{ID: id}, nil
}

func (f *fakeTemplateRepository) FindByStaff(ctx context.Context, schoolID string, staffEnrollmentsID int64) (*template.SalaryTemplate, error) {
	if f.findByStaffFn != nil {
		return f.findByStaffFn(ctx, schoolID, staffEnrollmentsID)
	}
	return &template.SalaryTemplate{}, nil
}

func (f *fakeTemplateRepository) Update(ctx context.Context, tmpl *template.SalaryTemplate) error {
	return nil
}

func (f *fakeTemplateRepository) ReplaceComponents(ctx context.Context, templateID int64, components []template.SalaryTemplateComponent) error {
	return nil
}

func (f *fakeTemplateRepository) Delete(ctx context.Context, schoolID string, id int64) error {
	return nil
}

type fakeSnapshotProvider struct {
	snapshotFn func(ctx context.Context, schoolID string) (catalog.Snapshot, error)
}

func (f *fakeSnapshotProvider) Snapshot(ctx context.Context, schoolID string) (catalog.Snapshot, error) {
	if f.snapshotFn != nil {
		return f.snapshotFn(ctx, schoolID)
	}
	return catalog.Snapshot{}, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payRunServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   payrun.Service
	repo      *fakePayRunRepository
	templates *fakeTemplateRepository
	snapshots *fakeSnapshotProvider
	outbox    *fakeOutboxRepository
}

func setupPayRunServiceTest(t *testing.T) *payRunServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayRunRepository{}
	templates := &fakeTemplateRepository{}
	snapshots := &fakeSnapshotProvider{}
	outbox := &fakeOutboxRepository{}
	svc := payrun.NewServiceWithOutbox(db, repo, templates, snapshots, 0, outbox)

	return &payRunServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		templates: templates,
		snapshots: snapshots,
		outbox:    outbox,
	}
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

func staffTemplate(schoolID uuid.UUID) *template.SalaryTemplate {
	return &template.SalaryTemplate{
		ID:                 5,
		SchoolID:           schoolID,
		StaffEnrollmentsID: 42,
		TemplateName:       "Teaching Staff",
		TemplateCode:       "TS-01",
		AnnualCTC:          dec(1200000),
		Components: []template.SalaryTemplateComponent{
			{SalaryComponentsID: 1, Percentage: nd(50)},
			{SalaryComponentsID: 30, Amount: nd(1800)},
		},
	}
}

func basicSnapshot() catalog.Snapshot {
	return catalog.NewSnapshot([]catalog.SalaryComponent{
		{
			ID:                 1,
			ComponentName:      "Basic Pay",
			ComponentType:      catalog.ComponentTypeEarning,
			IsBasedOnAnnualCTC: true,
			IsActive:           true,
		},
		{
			ID:            30,
			ComponentName: "Provident Fund",
			ComponentType: catalog.ComponentTypeDeduction,
			IsActive:      true,
		},
	})
}

func TestPayRunService_Create(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	actorID := uuid.New().String()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.templates.findByStaffFn = func(ctx context.Context, sid string, staffID int64) (*template.SalaryTemplate, error) {
		assert.Equal(t, int64(42), staffID)
		return staffTemplate(schoolID), nil
	}
	deps.snapshots.snapshotFn = func(ctx context.Context, sid string) (catalog.Snapshot, error) {
		return basicSnapshot(), nil
	}
	deps.repo.createFn = func(ctx context.Context, run *payrun.StaffPayRun) error {
		run.ID = 9
		assert.Equal(t, payrun.StatusDraft, run.Status)
		assertDecimalEqual(t, dec(100000), run.TotalPayroll)
		assert.Len(t, run.Components, 2)
		return nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Create(ctx, schoolID.String(), actorID, payrun.CreatePayRunRequest{
		StaffEnrollmentsID: 42,
		PayrollMonth:       "02",
		PayrollYear:        "2026",
		Notes:              "February run",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, payrun.StatusDraft, resp.Status)
	assert.Equal(t, "Teaching Staff", resp.TemplateName)
	assert.Equal(t, "February run", resp.Notes)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Create_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	actorID := uuid.New().String()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.templates.findByStaffFn = func(ctx context.Context, sid string, staffID int64) (*template.SalaryTemplate, error) {
		return staffTemplate(schoolID), nil
	}
	deps.repo.existsForPeriodFn = func(ctx context.Context, sid string, staffID int64, month, year string) (bool, error) {
		return true, nil
	}

	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Create(ctx, schoolID.String(), actorID, payrun.CreatePayRunRequest{
		StaffEnrollmentsID: 42,
		PayrollMonth:       "02",
		PayrollYear:        "2026",
	})

	assert.ErrorIs(t, err, payrunerrors.ErrPayRunAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Create_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	actorID := uuid.New().String()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Create(ctx, schoolID, actorID, payrun.CreatePayRunRequest{
		StaffEnrollmentsID: 42,
		PayrollMonth:       "13",
		PayrollYear:        "2026",
	})
	assert.ErrorIs(t, err, payrunerrors.ErrInvalidPayrollMonth)

	expectTx(t, deps.sqlMock, false)
	_, err = deps.service.Create(ctx, schoolID, actorID, payrun.CreatePayRunRequest{
		StaffEnrollmentsID: 42,
		PayrollMonth:       "02",
		PayrollYear:        "26",
	})
	assert.ErrorIs(t, err, payrunerrors.ErrInvalidPayrollYear)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Update_PaidImmutable(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	updated := false
	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{ID: id, SchoolID: schoolID, Status: payrun.StatusPaid}, nil
	}
	deps.repo.updateFn = func(ctx context.Context, run *payrun.StaffPayRun) error {
		updated = true
		return nil
	}
	deps.repo.replaceComponentsFn = func(ctx context.Context, payRunID int64, components []payrun.PayRunComponent) error {
		updated = true
		return nil
	}

	notes := "late edit"
	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Update(ctx, schoolID.String(), uuid.New().String(), 9, payrun.UpdatePayRunRequest{
		Notes: &notes,
	})

	assert.ErrorIs(t, err, payrunerrors.ErrPayRunPaidImmutable)
	assert.False(t, updated, "paid run must not reach the repository")
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Update_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{ID: id, SchoolID: schoolID, Status: payrun.StatusDraft}, nil
	}

	bogus := "approved"
	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Update(ctx, schoolID.String(), uuid.New().String(), 9, payrun.UpdatePayRunRequest{
		Status: &bogus,
	})

	assert.ErrorIs(t, err, payrunerrors.ErrInvalidStatus)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Update_FlagsModifiedComponents(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{
			ID:       id,
			SchoolID: schoolID,
			Status:   payrun.StatusDraft,
			Components: []payrun.PayRunComponent{
				{SalaryComponentsID: 1, Percentage: nd(50)},
				{SalaryComponentsID: 30, Amount: nd(1800)},
			},
		}, nil
	}

	var replaced []payrun.PayRunComponent
	deps.repo.replaceComponentsFn = func(ctx context.Context, payRunID int64, components []payrun.PayRunComponent) error {
		replaced = components
		return nil
	}

	newAmount := dec(2000)
	samePct := dec(50)
	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Update(ctx, schoolID.String(), uuid.New().String(), 9, payrun.UpdatePayRunRequest{
		Components: []payrun.UpdatePayRunComponentInput{
			{SalaryComponentsID: 30, Amount: &newAmount},
			{SalaryComponentsID: 1, Percentage: &samePct},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, replaced, 2)
	assert.False(t, replaced[0].IsModified, "unchanged line keeps its flag")
	assert.True(t, replaced[1].IsModified)
	assertDecimalEqual(t, dec(2000), replaced[1].Amount.Decimal)
	assert.True(t, resp.Components[1].IsModified)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Update_StatusTransitionsUnconstrained(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{ID: id, SchoolID: schoolID, Status: payrun.StatusFailed}, nil
	}

	next := payrun.StatusDraft
	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Update(ctx, schoolID.String(), uuid.New().String(), 9, payrun.UpdatePayRunRequest{
		Status: &next,
	})

	assert.NoError(t, err)
	assert.Equal(t, payrun.StatusDraft, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_MarkAsPaid(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	actorID := uuid.New().String()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{
			ID:                 id,
			SchoolID:           schoolID,
			StaffEnrollmentsID: 42,
			PayrollMonth:       "02",
			PayrollYear:        "2026",
			BasedAnnualCTC:     dec(1200000),
			Status:             payrun.StatusProcessing,
			Components: []payrun.PayRunComponent{
				{
					SalaryComponentsID: 1,
					Percentage:         nd(50),
					IsBasedOnAnnualCTC: true,
					ComponentType:      catalog.ComponentTypeEarning,
				},
			},
		}, nil
	}

	var topics []string
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		topics = append(topics, event.Topic)
		assert.NoError(t, kafka.ValidateOutboxEvent(event))
		if event.Topic == events.PayRunPaidTopic {
			var payload events.PayRunPaidEvent
			assert.NoError(t, json.Unmarshal(event.Payload, &payload))
			assert.Equal(t, int64(9), payload.PayRunID)
			assert.Equal(t, "50000", payload.NetPay)
			assert.Equal(t, actorID, payload.PaidBy)
		}
		return nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.MarkAsPaid(ctx, schoolID.String(), actorID, 9)

	assert.NoError(t, err)
	assert.Equal(t, payrun.StatusPaid, resp.Status)
	assert.NotNil(t, resp.PaidAt)
	assert.Equal(t, []string{events.PayRunPaidTopic, events.PayslipRequestedTopic}, topics)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_MarkAsPaid_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{ID: id, SchoolID: schoolID, Status: payrun.StatusPaid}, nil
	}

	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.MarkAsPaid(ctx, schoolID.String(), uuid.New().String(), 9)

	assert.ErrorIs(t, err, payrunerrors.ErrPayRunPaidImmutable)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_Delete_OnlyDraft(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{ID: id, SchoolID: schoolID, Status: payrun.StatusPending}, nil
	}

	expectTx(t, deps.sqlMock, false)
	err := deps.service.Delete(ctx, schoolID.String(), 9)

	assert.ErrorIs(t, err, payrunerrors.ErrDeleteOnlyDraft)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_GetSummary(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{
			ID:             id,
			SchoolID:       schoolID,
			BasedAnnualCTC: dec(1200000),
			Status:         payrun.StatusDraft,
			Components: []payrun.PayRunComponent{
				{
					SalaryComponentsID: 1,
					Percentage:         nd(50),
					IsBasedOnAnnualCTC: true,
					ComponentType:      catalog.ComponentTypeEarning,
				},
				{
					SalaryComponentsID: 30,
					Amount:             nd(1800),
					ComponentType:      catalog.ComponentTypeDeduction,
				},
			},
		}, nil
	}

	summary, err := deps.service.GetSummary(ctx, schoolID.String(), 9)

	assert.NoError(t, err)
	assertDecimalEqual(t, dec(50000), summary.Earnings)
	assertDecimalEqual(t, dec(1800), summary.Deductions)
	assertDecimalEqual(t, dec(48200), summary.NetPay)
}

func TestPayRunService_GeneratePayslip(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	tmpDir := t.TempDir()
	_ = os.Setenv("PAYSLIP_STORAGE_DIR", tmpDir)
	_ = os.Setenv("PAYSLIP_PUBLIC_BASE_URL", "/files/payslips")
	t.Cleanup(func() {
		_ = os.Unsetenv("PAYSLIP_STORAGE_DIR")
		_ = os.Unsetenv("PAYSLIP_PUBLIC_BASE_URL")
	})

	deps.repo.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*payrun.StaffPayRun, error) {
		return &payrun.StaffPayRun{
			ID:                 id,
			SchoolID:           schoolID,
			StaffEnrollmentsID: 42,
			PayrollMonth:       "02",
			PayrollYear:        "2026",
			TemplateName:       "Teaching Staff",
			TemplateCode:       "TS-01",
			BasedAnnualCTC:     dec(1200000),
			Status:             payrun.StatusPaid,
			Components: []payrun.PayRunComponent{
				{
					SalaryComponentsID: 1,
					PayslipName:        "Basic Pay",
					Percentage:         nd(50),
					IsBasedOnAnnualCTC: true,
					ComponentType:      catalog.ComponentTypeEarning,
				},
			},
		}, nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.GeneratePayslip(ctx, schoolID.String(), 9)

	assert.NoError(t, err)
	if assert.NotNil(t, resp.PayslipURL) {
		assert.Equal(t, "/files/payslips/payslip_9.pdf", *resp.PayslipURL)
	}

	_, statErr := os.Stat(filepath.Join(tmpDir, "payslip_9.pdf"))
	assert.NoError(t, statErr)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayRunService_PreviewTemplate(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	deps := setupPayRunServiceTest(t)
	defer deps.db.Close()

	deps.templates.findByIDAndSchoolFn = func(ctx context.Context, sid string, id int64) (*template.SalaryTemplate, error) {
		return staffTemplate(schoolID), nil
	}
	deps.snapshots.snapshotFn = func(ctx context.Context, sid string) (catalog.Snapshot, error) {
		return basicSnapshot(), nil
	}

	resp, err := deps.service.PreviewTemplate(ctx, schoolID.String(), 5)

	assert.NoError(t, err)
	assert.Len(t, resp.Components, 2)
	assert.Equal(t, "Basic Pay", resp.Components[0].PayslipName)
	assert.Equal(t, "Provident Fund", resp.Components[1].PayslipName)
}
