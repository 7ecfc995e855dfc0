package rbac

import (
	"sync"

	"github.com/shilpmis/saral-payroll/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	LoadSchoolPolicy(schoolID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer) Service {
	return &service{
		repo:     repo,
		enforcer: enforcer,
	}
}

func (s *service) LoadSchoolPolicy(schoolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadSchoolPolicyUnlocked(schoolID)
}

func (s *service) loadSchoolPolicyUnlocked(schoolID string) error {
	s.enforcer.ClearPolicy()

	staffRoles, err := s.repo.GetStaffRoles(schoolID)
	if err != nil {
		return err
	}

	for _, sr := range staffRoles {
		_, err := s.enforcer.AddGroupingPolicy(
			sr.StaffID,
			sr.RoleID,
			schoolID,
		)
		if err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(schoolID)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		_, err := s.enforcer.AddPolicy(
			rp.RoleID,
			schoolID,
			rp.Resource,
			rp.Action,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Policies live per school; reload so role edits take effect immediately.
	if err := s.loadSchoolPolicyUnlocked(req.SchoolID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(
		req.StaffID,
		req.SchoolID,
		req.Resource,
		req.Action,
	)
	if err != nil {
		zap.L().Error("rbac enforce failed",
			zap.String("staff_id", req.StaffID),
			zap.String("school_id", req.SchoolID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	zap.L().Debug("rbac enforce result",
		zap.String("staff_id", req.StaffID),
		zap.String("school_id", req.SchoolID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
