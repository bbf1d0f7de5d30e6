package domain

// RoleOrgAccess lists the organizations a role may read.
type RoleOrgAccess struct {
	RoleID          int64   `json:"role_id" yaml:"role_id"`
	ClientID        int64   `json:"client_id" yaml:"client_id"`
	IsAccessAllOrgs bool    `json:"is_access_all_orgs" yaml:"is_access_all_orgs"`
	OrgIDs          []int64 `json:"org_ids,omitempty" yaml:"org_ids,omitempty"`
}
