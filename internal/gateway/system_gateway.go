package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// SystemGateway administers accounts, roles and permission bindings.
type SystemGateway interface {
	PageUsers(ctx context.Context, q domain.SystemUserQuery) (*domain.PageResult[domain.SystemUserVO], error)
	GetUser(ctx context.Context, id int64) (*domain.SystemUserVO, error)
	UpdateUserStatus(ctx context.Context, id int64, status int) error

	PageRoles(ctx context.Context, q domain.RoleQuery) (*domain.PageResult[domain.RoleVO], error)
	CreateRole(ctx context.Context, req domain.RoleSaveRequest) (*domain.RoleVO, error)
	UpdateRole(ctx context.Context, id int64, req domain.RoleSaveRequest) (*domain.RoleVO, error)
	DeleteRole(ctx context.Context, id int64) error

	ListPermissions(ctx context.Context) ([]domain.PermissionVO, error)

	UserRoles(ctx context.Context, userID int64) ([]domain.RoleVO, error)
	AssignUserRoles(ctx context.Context, userID int64, roleIDs []int64) error
	RolePermissions(ctx context.Context, roleID int64) ([]domain.PermissionVO, error)
	AssignRolePermissions(ctx context.Context, roleID int64, permissionIDs []int64) error
}

type systemGateway struct {
	r     apiclient.Requester
	users resource[domain.SystemUserVO, domain.SystemUserQuery, struct{}, struct{}]
	roles resource[domain.RoleVO, domain.RoleQuery, domain.RoleSaveRequest, domain.RoleSaveRequest]
}

// NewSystemGateway builds the gateway.
func NewSystemGateway(r apiclient.Requester) SystemGateway {
	return &systemGateway{
		r:     r,
		users: newResource[domain.SystemUserVO, domain.SystemUserQuery, struct{}, struct{}](r, "/system/users"),
		roles: newResource[domain.RoleVO, domain.RoleQuery, domain.RoleSaveRequest, domain.RoleSaveRequest](r, "/system/roles"),
	}
}

func (g *systemGateway) PageUsers(ctx context.Context, q domain.SystemUserQuery) (*domain.PageResult[domain.SystemUserVO], error) {
	return g.users.page(ctx, q)
}

func (g *systemGateway) GetUser(ctx context.Context, id int64) (*domain.SystemUserVO, error) {
	return g.users.get(ctx, id)
}

func (g *systemGateway) UpdateUserStatus(ctx context.Context, id int64, status int) error {
	return apiclient.Exec(ctx, g.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/status", g.users.item(id)),
		Body:   domain.UserStatusRequest{Status: status},
	})
}

func (g *systemGateway) PageRoles(ctx context.Context, q domain.RoleQuery) (*domain.PageResult[domain.RoleVO], error) {
	return g.roles.page(ctx, q)
}

func (g *systemGateway) CreateRole(ctx context.Context, req domain.RoleSaveRequest) (*domain.RoleVO, error) {
	return g.roles.create(ctx, req)
}

func (g *systemGateway) UpdateRole(ctx context.Context, id int64, req domain.RoleSaveRequest) (*domain.RoleVO, error) {
	return g.roles.update(ctx, id, req)
}

func (g *systemGateway) DeleteRole(ctx context.Context, id int64) error {
	return g.roles.delete(ctx, id)
}

func (g *systemGateway) ListPermissions(ctx context.Context) ([]domain.PermissionVO, error) {
	return apiclient.Do[[]domain.PermissionVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/system/permissions",
	})
}

func (g *systemGateway) UserRoles(ctx context.Context, userID int64) ([]domain.RoleVO, error) {
	return apiclient.Do[[]domain.RoleVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s/roles", g.users.item(userID)),
	})
}

func (g *systemGateway) AssignUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	if roleIDs == nil {
		roleIDs = []int64{}
	}
	return apiclient.Exec(ctx, g.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/roles", g.users.item(userID)),
		Body:   domain.UserRolesRequest{RoleIDs: roleIDs},
	})
}

func (g *systemGateway) RolePermissions(ctx context.Context, roleID int64) ([]domain.PermissionVO, error) {
	return apiclient.Do[[]domain.PermissionVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s/permissions", g.roles.item(roleID)),
	})
}

func (g *systemGateway) AssignRolePermissions(ctx context.Context, roleID int64, permissionIDs []int64) error {
	if permissionIDs == nil {
		permissionIDs = []int64{}
	}
	return apiclient.Exec(ctx, g.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/permissions", g.roles.item(roleID)),
		Body:   domain.RolePermissionsRequest{PermissionIDs: permissionIDs},
	})
}
