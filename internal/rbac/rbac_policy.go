package rbac

import "freshbit/internal/domain"

// Resources & actions yang dipakai route.
const (
	ResourceDrive       = "drive"
	ResourceStage       = "stage"
	ResourceInvitation  = "invitation"
	ResourceRoster      = "roster"
	ResourceStudent     = "student"
	ResourceApplication = "application"
	ResourceProfile     = "profile"
	ResourceOrg         = "organization"
	ResourceUser        = "user"
	ResourceAnalytics   = "analytics"

	ActionCreate   = "create"
	ActionRead     = "read"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionPublish  = "publish"
	ActionClose    = "close"
	ActionAdvance  = "advance"
	ActionRespond  = "respond"
	ActionManage   = "manage"
	ActionUpload   = "upload"
	ActionConfirm  = "confirm"
	ActionEvaluate = "evaluate"
	ActionApprove  = "approve"
	ActionBrowse   = "browse"
)

type Permission struct {
	Role     domain.Role
	Resource string
	Action   string
}

// DefaultPermissions adalah policy statis per role. Kepemilikan data
// (drive milik company ini, binding milik college ini) dicek di service.
var DefaultPermissions = []Permission{
	{domain.RoleAdmin, ResourceDrive, ActionRead},
	{domain.RoleAdmin, ResourceDrive, ActionClose},
	{domain.RoleAdmin, ResourceDrive, ActionAdvance},
	{domain.RoleAdmin, ResourceStage, ActionRead},
	{domain.RoleAdmin, ResourceInvitation, ActionRead},
	{domain.RoleAdmin, ResourceInvitation, ActionManage},
	{domain.RoleAdmin, ResourceApplication, "*"},
	{domain.RoleAdmin, ResourceOrg, "*"},
	{domain.RoleAdmin, ResourceUser, ActionManage},
	{domain.RoleAdmin, ResourceAnalytics, "admin"},

	{domain.RoleCompany, ResourceDrive, "*"},
	{domain.RoleCompany, ResourceStage, ActionRead},
	{domain.RoleCompany, ResourceInvitation, ActionCreate},
	{domain.RoleCompany, ResourceInvitation, ActionRead},
	{domain.RoleCompany, ResourceInvitation, ActionManage},
	{domain.RoleCompany, ResourceApplication, ActionRead},
	{domain.RoleCompany, ResourceApplication, ActionEvaluate},
	{domain.RoleCompany, ResourceProfile, "*"},
	{domain.RoleCompany, ResourceOrg, ActionBrowse},
	{domain.RoleCompany, ResourceAnalytics, "company"},

	{domain.RoleCollege, ResourceDrive, ActionRead},
	{domain.RoleCollege, ResourceDrive, ActionAdvance},
	{domain.RoleCollege, ResourceStage, ActionRead},
	{domain.RoleCollege, ResourceInvitation, ActionRead},
	{domain.RoleCollege, ResourceInvitation, ActionRespond},
	{domain.RoleCollege, ResourceRoster, ActionUpload},
	{domain.RoleCollege, ResourceRoster, ActionConfirm},
	{domain.RoleCollege, ResourceStudent, "*"},
	{domain.RoleCollege, ResourceApplication, ActionCreate},
	{domain.RoleCollege, ResourceApplication, ActionRead},
	{domain.RoleCollege, ResourceProfile, "*"},
	{domain.RoleCollege, ResourceAnalytics, "college"},
}

func PolicyRows(perms []Permission) [][]string {
	rows := make([][]string, 0, len(perms))
	for _, p := range perms {
		rows = append(rows, []string{string(p.Role), p.Resource, p.Action})
	}
	return rows
}
