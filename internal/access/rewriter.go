package access

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
	"github.com/goto/folio/pkg/slices"
)

const (
	roleCacheTTL     = 5 * time.Minute
	roleCacheCleanup = 10 * time.Minute
)

//go:generate mockery --name=roleRepository --exported --with-expecter
type roleRepository interface {
	GetOrgAccess(ctx context.Context, roleID int64) (*domain.RoleOrgAccess, error)
}

// Rewriter restricts statements to the rows a principal may read: rows of
// its own client or the system client, and of the organizations its role
// grants.
type Rewriter struct {
	roles  roleRepository
	cache  *cache.Cache
	logger log.Logger
}

func NewRewriter(roles roleRepository, logger log.Logger) *Rewriter {
	return &Rewriter{
		roles:  roles,
		cache:  cache.New(roleCacheTTL, roleCacheCleanup),
		logger: logger,
	}
}

// AddAccessSQL adds the access restriction of the principal on tableName to
// the top level WHERE clause of stmt, creating the clause when missing.
// Statements of the system principal are returned unchanged.
func (r *Rewriter) AddAccessSQL(ctx context.Context, stmt, tableName string, principal domain.Principal) (string, error) {
	if principal.IsSystem() {
		return stmt, nil
	}
	if tableName == "" {
		return "", ErrEmptyTable
	}

	conditions := []string{fmt.Sprintf("%s.AD_Client_ID IN (0,%d)", tableName, principal.ClientID)}
	orgIDs, err := r.orgIDs(ctx, principal)
	if err != nil {
		return "", err
	}
	if orgIDs != nil {
		conditions = append(conditions, fmt.Sprintf("%s.AD_Org_ID IN (%s)", tableName, joinIDs(orgIDs)))
	}
	restriction := strings.Join(conditions, " AND ")

	rewritten := insertRestriction(stmt, restriction)
	r.logger.Debug(ctx, "access restriction added", "table", tableName, "role_id", principal.RoleID)
	return rewritten, nil
}

// orgIDs returns the organizations the principal may read, nil when it is
// not restricted by organization.
func (r *Rewriter) orgIDs(ctx context.Context, principal domain.Principal) ([]int64, error) {
	if len(principal.OrgIDs) > 0 {
		return withSystemOrg(principal.OrgIDs), nil
	}

	if principal.RoleID == 0 || r.roles == nil {
		if principal.OrgID == 0 {
			return nil, nil
		}
		return withSystemOrg([]int64{principal.OrgID}), nil
	}

	access, err := r.roleAccess(ctx, principal.RoleID)
	if err != nil {
		return nil, err
	}
	if access.IsAccessAllOrgs {
		return nil, nil
	}
	return withSystemOrg(access.OrgIDs), nil
}

func (r *Rewriter) roleAccess(ctx context.Context, roleID int64) (*domain.RoleOrgAccess, error) {
	key := strconv.FormatInt(roleID, 10)
	if v, ok := r.cache.Get(key); ok {
		return v.(*domain.RoleOrgAccess), nil
	}

	access, err := r.roles.GetOrgAccess(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("reading organization access of role %d: %w", roleID, err)
	}
	if access == nil {
		return nil, fmt.Errorf("%w: %d", ErrRoleNotFound, roleID)
	}

	r.cache.Set(key, access, cache.DefaultExpiration)
	return access, nil
}

// withSystemOrg returns ids in ascending order, led by the system
// organization.
func withSystemOrg(ids []int64) []int64 {
	return append([]int64{0}, slices.Standardize(ids)...)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
