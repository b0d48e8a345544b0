package domain

// UserTypeAdmin marks administrator accounts in UserVO.UserType.
const UserTypeAdmin = "1"

// UserVO is the identity returned by login and the current-user endpoint.
type UserVO struct {
	ID              FlexInt    `json:"id,omitempty"`
	UserAccount     string     `json:"userAccount,omitempty"`
	UserName        string     `json:"userName,omitempty"`
	UserAvatar      string     `json:"userAvatar,omitempty"`
	UserProfile     string     `json:"userProfile,omitempty"`
	UserType        FlexString `json:"userType,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Email           string     `json:"email,omitempty"`
	Status          FlexInt    `json:"status,omitempty"`
	RoleCodes       []string   `json:"roleCodes,omitempty"`
	PermissionCodes []string   `json:"permissionCodes,omitempty"`
	Token           *TokenInfo `json:"token,omitempty"`
	CreatedAt       string     `json:"createdAt,omitempty"`
}

// DisplayName picks the friendliest available label for the user.
func (u *UserVO) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return u.UserAccount
}

// Clone returns a deep copy.
func (u *UserVO) Clone() *UserVO {
	if u == nil {
		return nil
	}
	out := *u
	out.RoleCodes = append([]string(nil), u.RoleCodes...)
	out.PermissionCodes = append([]string(nil), u.PermissionCodes...)
	if u.Token != nil {
		tok := *u.Token
		out.Token = &tok
	}
	return &out
}

// WithoutToken returns a copy with the credential stripped, suitable for persisting.
func (u *UserVO) WithoutToken() *UserVO {
	out := u.Clone()
	if out != nil {
		out.Token = nil
	}
	return out
}
