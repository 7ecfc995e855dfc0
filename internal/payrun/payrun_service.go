package payrun

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/events"
	"github.com/shilpmis/saral-payroll/internal/messaging/kafka"
	payrunerrors "github.com/shilpmis/saral-payroll/internal/payrun/errors"
	"github.com/shilpmis/saral-payroll/internal/shared/contextutil"
	"github.com/shilpmis/saral-payroll/internal/template"
	templateerrors "github.com/shilpmis/saral-payroll/internal/template/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, schoolID, actorID string, req CreatePayRunRequest) (PayRunResponse, error)
	GetAll(ctx context.Context, schoolID string, filter GetPayRunsFilterRequest) ([]PayRunResponse, int64, error)
	GetByID(ctx context.Context, schoolID string, id int64) (PayRunResponse, error)
	GetSummary(ctx context.Context, schoolID string, id int64) (Summary, error)
	PreviewTemplate(ctx context.Context, schoolID string, templateID int64) (ResolvedComponentResponse, error)
	Update(ctx context.Context, schoolID, actorID string, id int64, req UpdatePayRunRequest) (PayRunResponse, error)
	MarkAsPaid(ctx context.Context, schoolID, actorID string, id int64) (PayRunResponse, error)
	Delete(ctx context.Context, schoolID string, id int64) error
	GeneratePayslip(ctx context.Context, schoolID string, id int64) (PayRunResponse, error)
}

type service struct {
	db               *sql.DB
	repo             Repository
	templates        template.Repository
	catalogs         catalog.SnapshotProvider
	outbox           kafka.OutboxRepository
	basisComponentID int64
}

func NewService(
	db *sql.DB,
	repo Repository,
	templates template.Repository,
	catalogs catalog.SnapshotProvider,
	basisComponentID int64,
) Service {
	return NewServiceWithOutbox(db, repo, templates, catalogs, basisComponentID, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	templates template.Repository,
	catalogs catalog.SnapshotProvider,
	basisComponentID int64,
	outbox kafka.OutboxRepository,
) Service {
	if basisComponentID <= 0 {
		basisComponentID = DefaultBasicPayComponentID
	}
	return &service{
		db:               db,
		repo:             repo,
		templates:        templates,
		catalogs:         catalogs,
		outbox:           outbox,
		basisComponentID: basisComponentID,
	}
}

func (s *service) Create(
	ctx context.Context,
	schoolID, actorID string,
	req CreatePayRunRequest,
) (PayRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(schoolID); err != nil {
		return PayRunResponse{}, payrunerrors.ErrInvalidSchoolID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayRunResponse{}, payrunerrors.ErrInvalidActorID
	}
	if err := validatePeriod(req.PayrollMonth, req.PayrollYear); err != nil {
		return PayRunResponse{}, err
	}

	tmpl, err := s.templates.FindByStaff(ctx, schoolID, req.StaffEnrollmentsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayRunResponse{}, templateerrors.ErrTemplateNotAssigned
		}
		return PayRunResponse{}, err
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return PayRunResponse{}, err
	}

	exists, err := qtx.ExistsForPeriod(ctx, schoolID, req.StaffEnrollmentsID, req.PayrollMonth, req.PayrollYear)
	if err != nil {
		return PayRunResponse{}, err
	}
	if exists {
		return PayRunResponse{}, payrunerrors.ErrPayRunAlreadyExists
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	run := BuildDraft(*tmpl, snap, req.PayrollMonth, req.PayrollYear, notes)
	run.CreatedBy = actorUUID

	if err := qtx.Create(ctx, &run); err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayRunResponse{}, err
	}

	contextutil.GetLogger(ctx, zap.L()).Info("pay run created",
		zap.Int64("pay_run_id", run.ID),
		zap.Int64("staff_enrollments_id", run.StaffEnrollmentsID),
		zap.String("period", run.PayrollMonth+"/"+run.PayrollYear),
	)

	return mapToResponse(run), nil
}

func (s *service) GetAll(
	ctx context.Context,
	schoolID string,
	filter GetPayRunsFilterRequest,
) ([]PayRunResponse, int64, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, 0, payrunerrors.ErrInvalidStatus
	}

	runs, total, err := s.repo.FindAllBySchool(ctx, schoolID, filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(runs), total, nil
}

func (s *service) GetByID(
	ctx context.Context,
	schoolID string,
	id int64,
) (PayRunResponse, error) {
	run, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*run), nil
}

func (s *service) GetSummary(
	ctx context.Context,
	schoolID string,
	id int64,
) (Summary, error) {
	run, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return Summary{}, mapRepositoryError(err)
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(*run, snap, s.basisComponentID), nil
}

// PreviewTemplate resolves a template against the live catalog without
// persisting anything, so the client can show the would-be payroll lines
// before a draft is created.
func (s *service) PreviewTemplate(
	ctx context.Context,
	schoolID string,
	templateID int64,
) (ResolvedComponentResponse, error) {
	tmpl, err := s.templates.FindByIDAndSchool(ctx, schoolID, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolvedComponentResponse{}, templateerrors.ErrTemplateNotFound
		}
		return ResolvedComponentResponse{}, err
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return ResolvedComponentResponse{}, err
	}

	resolved := ResolveComponents(tmpl.Components, snap)
	return ResolvedComponentResponse{Components: mapComponentPayloads(resolved)}, nil
}

func (s *service) Update(
	ctx context.Context,
	schoolID, actorID string,
	id int64,
	req UpdatePayRunRequest,
) (PayRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	// Paid runs are frozen. The guard fires before a single write below.
	if err := EnsureMutable(*run); err != nil {
		return PayRunResponse{}, err
	}

	if req.Status != nil {
		if err := GuardTransition(run.Status, *req.Status); err != nil {
			return PayRunResponse{}, err
		}
		run.Status = *req.Status
		if run.Status == StatusPaid && run.PaidAt == nil {
			now := time.Now().UTC()
			run.PaidAt = &now
		}
	}

	if req.Notes != nil {
		run.Notes = req.Notes
	}

	if len(req.Components) > 0 {
		run.Components = applyComponentEdits(run.Components, req.Components)
		if err := qtx.ReplaceComponents(ctx, run.ID, run.Components); err != nil {
			return PayRunResponse{}, mapRepositoryError(err)
		}
	}

	if err := qtx.Update(ctx, run); err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayRunResponse{}, err
	}

	return mapToResponse(*run), nil
}

func (s *service) MarkAsPaid(
	ctx context.Context,
	schoolID, actorID string,
	id int64,
) (PayRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	if err := EnsureMutable(*run); err != nil {
		return PayRunResponse{}, err
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return PayRunResponse{}, err
	}
	summary := Summarize(*run, snap, s.basisComponentID)

	now := time.Now().UTC()
	run.Status = StatusPaid
	run.PaidAt = &now

	if err := qtx.Update(ctx, run); err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		outboxRepo := s.outbox.WithTx(tx)

		paidEvent := events.PayRunPaidEvent{
			EventType:          "payrun_paid",
			RequestID:          rid,
			PayRunID:           run.ID,
			SchoolID:           schoolID,
			StaffEnrollmentsID: run.StaffEnrollmentsID,
			PayrollMonth:       run.PayrollMonth,
			PayrollYear:        run.PayrollYear,
			NetPay:             summary.NetPay.String(),
			PaidBy:             actorID,
			OccurredAt:         now,
		}
		if err := s.enqueue(ctx, outboxRepo, run, events.PayRunPaidTopic, paidEvent.EventType, paidEvent); err != nil {
			return PayRunResponse{}, err
		}

		payslipEvent := events.PayslipRequestedEvent{
			EventType:   "payslip_requested",
			RequestID:   rid,
			PayRunID:    run.ID,
			SchoolID:    schoolID,
			RequestedBy: actorID,
			OccurredAt:  now,
		}
		if err := s.enqueue(ctx, outboxRepo, run, events.PayslipRequestedTopic, payslipEvent.EventType, payslipEvent); err != nil {
			return PayRunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayRunResponse{}, err
	}

	contextutil.GetLogger(ctx, zap.L()).Info("pay run marked paid",
		zap.Int64("pay_run_id", run.ID),
		zap.String("net_pay", summary.NetPay.String()),
	)

	return mapToResponse(*run), nil
}

func (s *service) Delete(ctx context.Context, schoolID string, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if run.Status != StatusDraft {
		return payrunerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, schoolID, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GeneratePayslip(
	ctx context.Context,
	schoolID string,
	id int64,
) (PayRunResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayRunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return PayRunResponse{}, err
	}
	summary := Summarize(*run, snap, s.basisComponentID)

	pdfBytes, err := buildPayslipPDF(payslipLines(*run, summary, s.basisComponentID))
	if err != nil {
		return PayRunResponse{}, err
	}

	storageDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if storageDir == "" {
		storageDir = filepath.Join("data", "payslips")
	}
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return PayRunResponse{}, err
	}

	filename := fmt.Sprintf("payslip_%d.pdf", run.ID)
	if err := os.WriteFile(filepath.Join(storageDir, filename), pdfBytes, 0o644); err != nil {
		return PayRunResponse{}, err
	}

	baseURL := os.Getenv("PAYSLIP_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "/files/payslips"
	}
	url := baseURL + "/" + filename
	now := time.Now().UTC()
	run.PayslipURL = &url
	run.PayslipGeneratedAt = &now

	if err := qtx.Update(ctx, run); err != nil {
		return PayRunResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayRunResponse{}, err
	}

	return mapToResponse(*run), nil
}

func (s *service) enqueue(
	ctx context.Context,
	outboxRepo kafka.OutboxRepository,
	run *StaffPayRun,
	topic, eventType string,
	event any,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "pay_run",
		AggregateID:   strconv.FormatInt(run.ID, 10),
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validatePeriod(month, year string) error {
	m, err := strconv.Atoi(month)
	if err != nil || len(month) != 2 || m < 1 || m > 12 {
		return payrunerrors.ErrInvalidPayrollMonth
	}
	y, err := strconv.Atoi(year)
	if err != nil || len(year) != 4 || y < 1 {
		return payrunerrors.ErrInvalidPayrollYear
	}
	return nil
}

// applyComponentEdits patches payroll lines in place by component id. A
// line whose value actually changed gets flagged as modified; posting the
// same values back leaves the flag untouched.
func applyComponentEdits(components []PayRunComponent, edits []UpdatePayRunComponentInput) []PayRunComponent {
	for _, edit := range edits {
		for i := range components {
			if components[i].SalaryComponentsID != edit.SalaryComponentsID {
				continue
			}

			amount := toNullDecimal(edit.Amount)
			percentage := toNullDecimal(edit.Percentage)
			if !nullDecimalEqual(components[i].Amount, amount) ||
				!nullDecimalEqual(components[i].Percentage, percentage) {
				components[i].Amount = amount
				components[i].Percentage = percentage
				components[i].IsModified = true
			}
			break
		}
	}
	return components
}

func toNullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func nullDecimalEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return a.Decimal.Equal(b.Decimal)
}

func payslipLines(run StaffPayRun, summary Summary, basisComponentID int64) []string {
	lines := []string{
		"Payslip",
		fmt.Sprintf("Pay Run: #%d", run.ID),
		fmt.Sprintf("Staff Enrollment: %d", run.StaffEnrollmentsID),
		fmt.Sprintf("Period: %s/%s", run.PayrollMonth, run.PayrollYear),
		fmt.Sprintf("Template: %s (%s)", run.TemplateName, run.TemplateCode),
		"",
	}

	for _, component := range run.Components {
		value := resolveValue(component, run.BasedAnnualCTC, run.Components, basisComponentID)
		lines = append(lines, fmt.Sprintf("%s: %s", component.PayslipName, value.StringFixed(2)))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Earnings: %s", summary.Earnings.StringFixed(2)),
		fmt.Sprintf("Deductions: %s", summary.Deductions.StringFixed(2)),
		fmt.Sprintf("Net Pay: %s", summary.NetPay.StringFixed(2)),
	)

	return lines
}

func mapComponentPayloads(components []PayRunComponent) []PayRunComponentPayload {
	payloads := make([]PayRunComponentPayload, len(components))
	for i, c := range components {
		payloads[i] = PayRunComponentPayload{
			SalaryComponentsID: c.SalaryComponentsID,
			PayslipName:        c.PayslipName,
			IsBasedOnAnnualCTC: c.IsBasedOnAnnualCTC,
			IsBasedOnBasicPay:  c.IsBasedOnBasicPay,
			ComponentType:      c.ComponentType,
			IsModified:         c.IsModified,
			SortOrder:          c.SortOrder,
		}
		if c.Amount.Valid {
			v := c.Amount.Decimal
			payloads[i].Amount = &v
		}
		if c.Percentage.Valid {
			v := c.Percentage.Decimal
			payloads[i].Percentage = &v
		}
	}
	return payloads
}

func mapToResponse(run StaffPayRun) PayRunResponse {
	return PayRunResponse{
		ID:                 run.ID,
		SchoolID:           run.SchoolID.String(),
		BaseTemplateID:     run.BaseTemplateID,
		SalaryTemplateID:   run.SalaryTemplateID,
		StaffEnrollmentsID: run.StaffEnrollmentsID,
		PayrollMonth:       run.PayrollMonth,
		PayrollYear:        run.PayrollYear,
		TemplateName:       run.TemplateName,
		TemplateCode:       run.TemplateCode,
		BasedAnnualCTC:     run.BasedAnnualCTC,
		TotalPayroll:       run.TotalPayroll,
		Notes:              derefString(run.Notes),
		Status:             run.Status,
		PaidAt:             run.PaidAt,
		PayslipURL:         run.PayslipURL,
		Components:         mapComponentPayloads(run.Components),
		CreatedAt:          run.CreatedAt,
		UpdatedAt:          run.UpdatedAt,
	}
}

func mapToListResponse(runs []StaffPayRun) []PayRunResponse {
	resp := make([]PayRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapToResponse(run)
	}
	return resp
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
