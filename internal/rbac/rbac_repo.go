package rbac

import "gorm.io/gorm"

type Repository interface {
	GetStaffRoles(schoolID string) ([]StaffRoleRow, error)
	GetRolePermissions(schoolID string) ([]RolePermissionRow, error)

	ListRoles(schoolID string) ([]RoleRow, error)
	ListPermissions() ([]PermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RoleRow struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SchoolID    string `gorm:"type:uuid"`
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

type PermissionRow struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Resource string
	Action   string
	Label    string
	Category string
}

type StaffRoleRow struct {
	StaffID string
	RoleID  string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetStaffRoles(schoolID string) ([]StaffRoleRow, error) {
	var result []StaffRoleRow

	err := r.db.
		Table("staff_roles").
		Select("staff_roles.staff_id, staff_roles.role_id").
		Joins("JOIN roles ON roles.id = staff_roles.role_id").
		Where("roles.school_id = ?", schoolID).
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(schoolID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.school_id = ?", schoolID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(schoolID string) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.Where("school_id = ?", schoolID).Find(&result).Error
	return result, err
}

func (r *repository) ListPermissions() ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.Order("category, label").Find(&result).Error
	return result, err
}
