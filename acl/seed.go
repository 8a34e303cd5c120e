package acl

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"crm/models"
)

// Seeded role codes
const (
	RoleCodeAdmin   = "admin"
	RoleCodeManager = "manager"
	RoleCodeMember  = "member"
)

// memberAllowed is the default grant set for the member role.
var memberAllowed = map[PermissionCode]struct{}{
	LeadRead:        {},
	LeadStatus:      {},
	CompanyTypeRead: {},
	WorkspaceRead:   {},
	AclRead:         {},
	MailSend:        {},
}

// Seed populates the permission catalog and the default roles. It only ever
// creates missing rows: values an operator changed later are left alone, so
// running it on every boot is safe.
func Seed(db *gorm.DB) error {
	if err := seedCatalog(db); err != nil {
		return err
	}

	if err := seedRole(db, RoleCodeAdmin, "Administrator", func(PermissionCode) bool {
		return true
	}); err != nil {
		return err
	}
	if err := seedRole(db, RoleCodeManager, "Manager", func(code PermissionCode) bool {
		return code != AclManage
	}); err != nil {
		return err
	}
	if err := seedRole(db, RoleCodeMember, "Member", func(code PermissionCode) bool {
		_, ok := memberAllowed[code]
		return ok
	}); err != nil {
		return err
	}

	log.Println("ACL catalog and roles seeded.")
	return nil
}

func seedCatalog(db *gorm.DB) error {
	var existing []models.Permission
	if err := db.Find(&existing).Error; err != nil {
		return err
	}
	have := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		have[p.Code] = struct{}{}
	}

	for _, code := range AllCodes() {
		if _, ok := have[string(code)]; ok {
			continue
		}
		if err := db.Create(&models.Permission{Code: string(code)}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedRole(db *gorm.DB, code, name string, allowed func(PermissionCode) bool) error {
	var role models.Role
	err := db.First(&role, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = models.Role{Code: code, Name: name}
		err = db.Create(&role).Error
	}
	if err != nil {
		return err
	}

	var perms []models.Permission
	if err := db.Find(&perms).Error; err != nil {
		return err
	}

	for _, p := range perms {
		var count int64
		if err := db.Model(&models.RolePermission{}).
			Where("role_id = ? AND permission_id = ?", role.ID, p.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := models.RolePermission{
			RoleID:       role.ID,
			PermissionID: p.ID,
			Allowed:      allowed(PermissionCode(p.Code)),
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// BootstrapRoleCode is the role-assignment policy at registration: the very
// first registered user becomes admin, everyone after that starts as member.
func BootstrapRoleCode(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return RoleCodeAdmin, nil
	}
	return RoleCodeMember, nil
}
