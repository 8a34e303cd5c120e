package acl

// PermissionCode identifies a single grantable capability. The catalog is
// closed: codes are seeded once at startup and never created at runtime, and
// resolving a code outside this set is an error, never a silent deny or allow.
type PermissionCode string

const (
	AclRead   PermissionCode = "acl.read"
	AclManage PermissionCode = "acl.manage"

	UsersManage PermissionCode = "users.manage"

	LeadCreate   PermissionCode = "lead.create"
	LeadRead     PermissionCode = "lead.read"
	LeadFullRead PermissionCode = "lead.full-read"
	LeadUpdate   PermissionCode = "lead.update"
	LeadDelete   PermissionCode = "lead.delete"
	LeadStatus   PermissionCode = "lead.status"
	LeadManage   PermissionCode = "lead.manage"

	MailSend PermissionCode = "mail.send"

	WorkspaceCreate PermissionCode = "workspace.create"
	WorkspaceRead   PermissionCode = "workspace.read"
	WorkspaceUpdate PermissionCode = "workspace.update"
	WorkspaceDelete PermissionCode = "workspace.delete"
	WorkspaceManage PermissionCode = "workspace.manage"

	CompanyTypeCreate PermissionCode = "company-type.create"
	CompanyTypeRead   PermissionCode = "company-type.read"
	CompanyTypeUpdate PermissionCode = "company-type.update"
	CompanyTypeDelete PermissionCode = "company-type.delete"
)

var catalog = []PermissionCode{
	AclRead,
	AclManage,
	UsersManage,
	LeadCreate,
	LeadRead,
	LeadFullRead,
	LeadUpdate,
	LeadDelete,
	LeadStatus,
	LeadManage,
	MailSend,
	WorkspaceCreate,
	WorkspaceRead,
	WorkspaceUpdate,
	WorkspaceDelete,
	WorkspaceManage,
	CompanyTypeCreate,
	CompanyTypeRead,
	CompanyTypeUpdate,
	CompanyTypeDelete,
}

var catalogSet = func() map[PermissionCode]struct{} {
	set := make(map[PermissionCode]struct{}, len(catalog))
	for _, c := range catalog {
		set[c] = struct{}{}
	}
	return set
}()

// AllCodes returns the full permission catalog in seeding order.
func AllCodes() []PermissionCode {
	out := make([]PermissionCode, len(catalog))
	copy(out, catalog)
	return out
}

// KnownCode reports whether code belongs to the catalog.
func KnownCode(code PermissionCode) bool {
	_, ok := catalogSet[code]
	return ok
}
