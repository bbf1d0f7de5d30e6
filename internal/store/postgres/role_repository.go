package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/goto/folio/domain"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db}
}

// GetOrgAccess returns the organizations the active role may read, nil when
// there is no such role.
func (r *RoleRepository) GetOrgAccess(ctx context.Context, roleID int64) (*domain.RoleOrgAccess, error) {
	db := conn(ctx, r.db)

	var roles []struct {
		ClientID        int64  `gorm:"column:ad_client_id"`
		IsAccessAllOrgs string `gorm:"column:isaccessallorgs"`
	}
	if err := db.Raw("SELECT ad_client_id, isaccessallorgs FROM ad_role WHERE ad_role_id = ? AND isactive = 'Y'", roleID).Scan(&roles).Error; err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, nil
	}

	access := &domain.RoleOrgAccess{
		RoleID:          roleID,
		ClientID:        roles[0].ClientID,
		IsAccessAllOrgs: roles[0].IsAccessAllOrgs == "Y",
	}
	if access.IsAccessAllOrgs {
		return access, nil
	}

	if err := db.Raw("SELECT ad_org_id FROM ad_role_orgaccess WHERE ad_role_id = ? AND isactive = 'Y' ORDER BY ad_org_id", roleID).Scan(&access.OrgIDs).Error; err != nil {
		return nil, err
	}
	return access, nil
}
