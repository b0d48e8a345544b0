package auth

import "slices"

// PermissionSource exposes the session's permission codes.
type PermissionSource interface {
	PermissionCodes() []string
}

// Requirement is the permission a UI element declares: one code, or a set of which any
// one suffices. The zero value declares nothing.
type Requirement struct {
	codes    []string
	declared bool
}

// Permission requires a single code. An empty code declares nothing.
func Permission(code string) Requirement {
	if code == "" {
		return Requirement{}
	}
	return Requirement{codes: []string{code}, declared: true}
}

// AnyPermission requires at least one of codes. An empty set can never be satisfied.
func AnyPermission(codes ...string) Requirement {
	return Requirement{codes: slices.Clone(codes), declared: true}
}

// Codes returns the declared codes.
func (r Requirement) Codes() []string { return slices.Clone(r.codes) }

// Declared reports whether the requirement names any permission at all.
func (r Requirement) Declared() bool { return r.declared }

// CanRender reports whether an element carrying req may be built for src. Elements that
// declare nothing are always rendered.
func CanRender(req Requirement, src PermissionSource) bool {
	if !req.declared {
		return true
	}
	return HasPermission(src, req.codes...)
}

// HasPermission reports whether src holds any of codes.
func HasPermission(src PermissionSource, codes ...string) bool {
	held := permissionSet(src)
	for _, code := range codes {
		if _, ok := held[code]; ok {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether src holds every one of codes.
func HasAllPermissions(src PermissionSource, codes ...string) bool {
	held := permissionSet(src)
	for _, code := range codes {
		if _, ok := held[code]; !ok {
			return false
		}
	}
	return true
}

func permissionSet(src PermissionSource) map[string]struct{} {
	if src == nil {
		return nil
	}
	codes := src.PermissionCodes()
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// Codes is a fixed permission set, handy where no session is involved.
type Codes []string

// PermissionCodes implements PermissionSource.
func (c Codes) PermissionCodes() []string { return c }
