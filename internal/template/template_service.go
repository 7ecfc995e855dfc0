package template

import (
	"context"
	"database/sql"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	templateerrors "github.com/shilpmis/saral-payroll/internal/template/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, schoolID string, req CreateSalaryTemplateRequest) (SalaryTemplateResponse, error)
	GetAll(ctx context.Context, schoolID string) ([]SalaryTemplateResponse, error)
	GetByID(ctx context.Context, schoolID string, id int64) (SalaryTemplateResponse, error)
	GetByStaff(ctx context.Context, schoolID string, staffEnrollmentsID int64) (SalaryTemplateResponse, error)
	Update(ctx context.Context, schoolID string, id int64, req UpdateSalaryTemplateRequest) (SalaryTemplateResponse, error)
	Delete(ctx context.Context, schoolID string, id int64) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	catalogs catalog.SnapshotProvider
}

func NewService(db *sql.DB, repo Repository, catalogs catalog.SnapshotProvider) Service {
	return &service{db: db, repo: repo, catalogs: catalogs}
}

func (s *service) Create(
	ctx context.Context,
	schoolID string,
	req CreateSalaryTemplateRequest,
) (SalaryTemplateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryTemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return SalaryTemplateResponse{}, templateerrors.ErrTemplateNotFound
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return SalaryTemplateResponse{}, err
	}

	components, err := buildComponents(req.Components, snap)
	if err != nil {
		return SalaryTemplateResponse{}, err
	}

	tmpl := &SalaryTemplate{
		SchoolID:           schoolUUID,
		BaseTemplateID:     req.BaseTemplateID,
		StaffEnrollmentsID: req.StaffEnrollmentsID,
		TemplateName:       req.TemplateName,
		TemplateCode:       req.TemplateCode,
		AnnualCTC:          req.AnnualCTC,
		Description:        req.Description,
		Components:         components,
	}

	if err := qtx.Create(ctx, tmpl); err != nil {
		return SalaryTemplateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryTemplateResponse{}, err
	}

	return mapToResponse(*tmpl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	schoolID string,
) ([]SalaryTemplateResponse, error) {
	templates, err := s.repo.FindAllBySchool(ctx, schoolID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(templates), nil
}

func (s *service) GetByID(
	ctx context.Context,
	schoolID string,
	id int64,
) (SalaryTemplateResponse, error) {
	tmpl, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return SalaryTemplateResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*tmpl), nil
}

func (s *service) GetByStaff(
	ctx context.Context,
	schoolID string,
	staffEnrollmentsID int64,
) (SalaryTemplateResponse, error) {
	tmpl, err := s.repo.FindByStaff(ctx, schoolID, staffEnrollmentsID)
	if err != nil {
		return SalaryTemplateResponse{}, mapStaffLookupError(err)
	}

	return mapToResponse(*tmpl), nil
}

func (s *service) Update(
	ctx context.Context,
	schoolID string,
	id int64,
	req UpdateSalaryTemplateRequest,
) (SalaryTemplateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryTemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	tmpl, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return SalaryTemplateResponse{}, mapRepositoryError(err)
	}

	snap, err := s.catalogs.Snapshot(ctx, schoolID)
	if err != nil {
		return SalaryTemplateResponse{}, err
	}

	components, err := buildComponents(req.Components, snap)
	if err != nil {
		return SalaryTemplateResponse{}, err
	}

	tmpl.TemplateName = req.TemplateName
	tmpl.TemplateCode = req.TemplateCode
	tmpl.AnnualCTC = req.AnnualCTC
	tmpl.Description = req.Description

	if err := qtx.Update(ctx, tmpl); err != nil {
		return SalaryTemplateResponse{}, mapRepositoryError(err)
	}

	if err := qtx.ReplaceComponents(ctx, tmpl.ID, components); err != nil {
		return SalaryTemplateResponse{}, mapRepositoryError(err)
	}
	tmpl.Components = components

	if err := tx.Commit(); err != nil {
		return SalaryTemplateResponse{}, err
	}

	return mapToResponse(*tmpl), nil
}

func (s *service) Delete(ctx context.Context, schoolID string, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndSchool(ctx, schoolID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, schoolID, id); err != nil {
		return err
	}

	return tx.Commit()
}

// buildComponents checks each reference against the catalog snapshot:
// the component must exist, be active, and carry the value kind its
// calculation method expects.
func buildComponents(inputs []TemplateComponentInput, snap catalog.Snapshot) ([]SalaryTemplateComponent, error) {
	components := make([]SalaryTemplateComponent, 0, len(inputs))

	for i, input := range inputs {
		details, ok := snap.Lookup(input.SalaryComponentsID)
		if !ok {
			return nil, templateerrors.ErrUnknownCatalogComponent
		}
		if !details.IsActive {
			return nil, templateerrors.ErrInactiveCatalogComponent
		}

		switch details.CalculationMethod {
		case catalog.CalculationFlatAmount:
			if input.Amount == nil || input.Percentage != nil {
				return nil, templateerrors.ErrComponentValueMismatch
			}
		case catalog.CalculationPercentage:
			if input.Percentage == nil || input.Amount != nil {
				return nil, templateerrors.ErrComponentValueMismatch
			}
		}

		components = append(components, SalaryTemplateComponent{
			SalaryComponentsID: input.SalaryComponentsID,
			Amount:             toNullDecimal(input.Amount),
			Percentage:         toNullDecimal(input.Percentage),
			SortOrder:          i,
		})
	}

	return components, nil
}

func toNullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func mapToResponse(tmpl SalaryTemplate) SalaryTemplateResponse {
	components := make([]TemplateComponentResponse, len(tmpl.Components))
	for i, c := range tmpl.Components {
		components[i] = TemplateComponentResponse{
			SalaryComponentsID: c.SalaryComponentsID,
		}
		if c.Amount.Valid {
			v := c.Amount.Decimal
			components[i].Amount = &v
		}
		if c.Percentage.Valid {
			v := c.Percentage.Decimal
			components[i].Percentage = &v
		}
	}

	return SalaryTemplateResponse{
		ID:                 tmpl.ID,
		BaseTemplateID:     tmpl.BaseTemplateID,
		StaffEnrollmentsID: tmpl.StaffEnrollmentsID,
		TemplateName:       tmpl.TemplateName,
		TemplateCode:       tmpl.TemplateCode,
		AnnualCTC:          tmpl.AnnualCTC,
		Description:        tmpl.Description,
		Components:         components,
	}
}

func mapToListResponse(templates []SalaryTemplate) []SalaryTemplateResponse {
	resp := make([]SalaryTemplateResponse, len(templates))
	for i, tmpl := range templates {
		resp[i] = mapToResponse(tmpl)
	}
	return resp
}
