package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	catalogerrors "github.com/shilpmis/saral-payroll/internal/catalog/errors"
	"github.com/shilpmis/saral-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const componentAllKeyPrefix = "salary_components:all:"

func componentAllKey(schoolID string) string {
	return componentAllKeyPrefix + schoolID
}

// SnapshotProvider is the narrow read interface pay-run resolution needs.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, schoolID string) (Snapshot, error)
}

type Service interface {
	Create(ctx context.Context, schoolID string, req CreateSalaryComponentRequest) (SalaryComponentResponse, error)
	GetAll(ctx context.Context, schoolID string, filter GetSalaryComponentsFilterRequest) ([]SalaryComponentResponse, error)
	GetByID(ctx context.Context, schoolID string, id int64) (SalaryComponentResponse, error)
	Update(ctx context.Context, schoolID string, id int64, req UpdateSalaryComponentRequest) (SalaryComponentResponse, error)
	Delete(ctx context.Context, schoolID string, id int64) error
	Snapshot(ctx context.Context, schoolID string) (Snapshot, error)
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(
	ctx context.Context,
	schoolID string,
	req CreateSalaryComponentRequest,
) (SalaryComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return SalaryComponentResponse{}, catalogerrors.ErrComponentNotFound
	}

	if err := validateCalculationValues(req.CalculationMethod, req.Amount, req.Percentage); err != nil {
		return SalaryComponentResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	component := &SalaryComponent{
		SchoolID:                   schoolUUID,
		ComponentName:              req.ComponentName,
		ComponentType:              req.ComponentType,
		CalculationMethod:          req.CalculationMethod,
		Amount:                     toNullDecimal(req.Amount),
		Percentage:                 toNullDecimal(req.Percentage),
		IsBasedOnAnnualCTC:         req.IsBasedOnAnnualCTC,
		NameInPayslip:              req.NameInPayslip,
		IsTaxable:                  req.IsTaxable,
		ConsiderForEPF:             req.ConsiderForEPF,
		ConsiderForESI:             req.ConsiderForESI,
		ConsiderForESIC:            req.ConsiderForESIC,
		ProRataCalculation:         req.ProRataCalculation,
		IsActive:                   isActive,
		IsMandatory:                req.IsMandatory,
		IsMandatoryForAllTemplates: req.IsMandatoryForAllTemplates,
	}

	if err := qtx.Create(ctx, component); err != nil {
		return SalaryComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryComponentResponse{}, err
	}

	s.invalidateCache(ctx, schoolID)

	return mapToResponse(*component), nil
}

func (s *service) GetAll(
	ctx context.Context,
	schoolID string,
	filter GetSalaryComponentsFilterRequest,
) ([]SalaryComponentResponse, error) {
	components, err := s.loadComponents(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	if filter.ActiveOnly {
		filtered := make([]SalaryComponent, 0, len(components))
		for _, c := range components {
			if c.IsActive {
				filtered = append(filtered, c)
			}
		}
		components = filtered
	}

	return mapToListResponse(components), nil
}

func (s *service) GetByID(
	ctx context.Context,
	schoolID string,
	id int64,
) (SalaryComponentResponse, error) {
	component, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return SalaryComponentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*component), nil
}

func (s *service) Update(
	ctx context.Context,
	schoolID string,
	id int64,
	req UpdateSalaryComponentRequest,
) (SalaryComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := validateCalculationValues(req.CalculationMethod, req.Amount, req.Percentage); err != nil {
		return SalaryComponentResponse{}, err
	}

	component, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return SalaryComponentResponse{}, mapRepositoryError(err)
	}

	component.ComponentName = req.ComponentName
	component.ComponentType = req.ComponentType
	component.CalculationMethod = req.CalculationMethod
	component.Amount = toNullDecimal(req.Amount)
	component.Percentage = toNullDecimal(req.Percentage)
	component.IsBasedOnAnnualCTC = req.IsBasedOnAnnualCTC
	component.NameInPayslip = req.NameInPayslip
	component.IsTaxable = req.IsTaxable
	component.ConsiderForEPF = req.ConsiderForEPF
	component.ConsiderForESI = req.ConsiderForESI
	component.ConsiderForESIC = req.ConsiderForESIC
	component.ProRataCalculation = req.ProRataCalculation
	component.IsMandatory = req.IsMandatory
	component.IsMandatoryForAllTemplates = req.IsMandatoryForAllTemplates
	if req.IsActive != nil {
		component.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, component); err != nil {
		return SalaryComponentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryComponentResponse{}, err
	}

	s.invalidateCache(ctx, schoolID)

	return mapToResponse(*component), nil
}

func (s *service) Delete(ctx context.Context, schoolID string, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if component.IsMandatory || component.IsMandatoryForAllTemplates {
		return catalogerrors.ErrComponentMandatory
	}

	referenced, err := qtx.IsReferencedByTemplates(ctx, schoolID, id)
	if err != nil {
		return err
	}
	if referenced {
		return catalogerrors.ErrComponentInUse
	}

	if err := qtx.Delete(ctx, schoolID, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, schoolID)

	return nil
}

// Snapshot returns the school's whole catalog keyed by component id. Reads
// go through the same cache as GetAll; the resolver and the summary
// calculator both consume this.
func (s *service) Snapshot(ctx context.Context, schoolID string) (Snapshot, error) {
	components, err := s.loadComponents(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(components), nil
}

func (s *service) loadComponents(ctx context.Context, schoolID string) ([]SalaryComponent, error) {
	cacheKey := componentAllKey(schoolID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var components []SalaryComponent
			if err := json.Unmarshal([]byte(cached), &components); err == nil {
				return components, nil
			}
		}
	}

	// Collapse concurrent misses into one catalog query.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		components, err := s.repo.FindAllBySchool(ctx, schoolID, false)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(components); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return components, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]SalaryComponent), nil
}

func (s *service) invalidateCache(ctx context.Context, schoolID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := componentAllKey(schoolID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Error("invalidate catalog cache failed",
			zap.String("cache_key", cacheKey),
			zap.Error(err),
		)
	}
}

func validateCalculationValues(method string, amount, percentage *decimal.Decimal) error {
	switch method {
	case CalculationFlatAmount:
		if amount == nil || percentage != nil {
			return catalogerrors.ErrAmountRequired
		}
	case CalculationPercentage:
		if percentage == nil || amount != nil {
			return catalogerrors.ErrPercentageRequired
		}
		if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
			return catalogerrors.ErrPercentageOutOfRange
		}
	}
	return nil
}

func toNullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func mapToResponse(component SalaryComponent) SalaryComponentResponse {
	resp := SalaryComponentResponse{
		ID:                         component.ID,
		ComponentName:              component.ComponentName,
		ComponentType:              component.ComponentType,
		CalculationMethod:          component.CalculationMethod,
		IsBasedOnAnnualCTC:         component.IsBasedOnAnnualCTC,
		NameInPayslip:              component.NameInPayslip,
		IsTaxable:                  component.IsTaxable,
		ConsiderForEPF:             component.ConsiderForEPF,
		ConsiderForESI:             component.ConsiderForESI,
		ConsiderForESIC:            component.ConsiderForESIC,
		ProRataCalculation:         component.ProRataCalculation,
		IsActive:                   component.IsActive,
		IsMandatory:                component.IsMandatory,
		IsMandatoryForAllTemplates: component.IsMandatoryForAllTemplates,
	}

	if component.Amount.Valid {
		v := component.Amount.Decimal
		resp.Amount = &v
	}
	if component.Percentage.Valid {
		v := component.Percentage.Decimal
		resp.Percentage = &v
	}

	return resp
}

func mapToListResponse(components []SalaryComponent) []SalaryComponentResponse {
	resp := make([]SalaryComponentResponse, len(components))
	for i, component := range components {
		resp[i] = mapToResponse(component)
	}
	return resp
}
