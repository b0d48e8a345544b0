package domain

// SystemUserVO is an account as listed by the user administration screen.
type SystemUserVO struct {
	ID          int64      `json:"id,omitempty"`
	UserAccount string     `json:"userAccount,omitempty"`
	UserName    string     `json:"userName,omitempty"`
	UserAvatar  string     `json:"userAvatar,omitempty"`
	UserType    FlexString `json:"userType,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Status      int        `json:"status,omitempty"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
}

// SystemUserQuery filters accounts.
type SystemUserQuery struct {
	Keyword  string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	UserType string `json:"userType,omitempty" query:"userType" url:"userType,omitempty"`
	Status   *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	PageQuery
}

// UserStatusRequest enables or disables an account.
type UserStatusRequest struct {
	Status int `json:"status"`
}

// RoleVO is an authorization role.
type RoleVO struct {
	ID          int64  `json:"id,omitempty"`
	RoleCode    string `json:"roleCode,omitempty"`
	RoleName    string `json:"roleName,omitempty"`
	Description string `json:"description,omitempty"`
	Status      int    `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// RoleQuery filters roles.
type RoleQuery struct {
	Keyword string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	Status  *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	PageQuery
}

// RoleSaveRequest creates or updates a role.
type RoleSaveRequest struct {
	RoleCode    string `json:"roleCode"`
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
	Status      *int   `json:"status,omitempty"`
}

// PermissionVO is one permission code in the catalog.
type PermissionVO struct {
	ID             int64  `json:"id,omitempty"`
	PermissionCode string `json:"permissionCode,omitempty"`
	PermissionName string `json:"permissionName,omitempty"`
	Module         string `json:"module,omitempty"`
	Description    string `json:"description,omitempty"`
}

// UserRolesRequest replaces the roles bound to a user.
type UserRolesRequest struct {
	RoleIDs []int64 `json:"roleIds"`
}

// RolePermissionsRequest replaces the permissions bound to a role.
type RolePermissionsRequest struct {
	PermissionIDs []int64 `json:"permissionIds"`
}
