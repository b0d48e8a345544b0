package auth

import "testing"

func TestCanRender(t *testing.T) {
	held := Codes{"rental:order:audit", "content:news:delete"}

	cases := []struct {
		name string
		req  Requirement
		src  PermissionSource
		want bool
	}{
		{name: "undeclared", req: Requirement{}, src: held, want: true},
		{name: "empty code is undeclared", req: Permission(""), src: Codes{}, want: true},
		{name: "undeclared without source", req: Requirement{}, src: nil, want: true},
		{name: "held code", req: Permission("rental:order:audit"), src: held, want: true},
		{name: "missing code", req: Permission("resource:car:delete"), src: held, want: false},
		{name: "any of set", req: AnyPermission("resource:car:delete", "content:news:delete"), src: held, want: true},
		{name: "none of set", req: AnyPermission("resource:car:delete", "resource:car:audit"), src: held, want: false},
		{name: "empty set never satisfied", req: AnyPermission(), src: held, want: false},
		{name: "no permissions held", req: Permission("rental:order:audit"), src: Codes{}, want: false},
		{name: "nil source", req: Permission("rental:order:audit"), src: nil, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanRender(tc.req, tc.src); got != tc.want {
				t.Fatalf("CanRender = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasPermissionHelpers(t *testing.T) {
	held := Codes{"a", "b"}

	if !HasPermission(held, "x", "b") {
		t.Fatalf("HasPermission should accept any match")
	}
	if HasPermission(held) {
		t.Fatalf("HasPermission with no codes must be false")
	}
	if !HasAllPermissions(held, "a", "b") {
		t.Fatalf("HasAllPermissions should accept a full match")
	}
	if HasAllPermissions(held, "a", "c") {
		t.Fatalf("HasAllPermissions must reject a partial match")
	}
	if !HasAllPermissions(held) {
		t.Fatalf("HasAllPermissions with no codes is vacuously true")
	}
}

func TestRequirementCodesAreCopied(t *testing.T) {
	codes := []string{"a", "b"}
	req := AnyPermission(codes...)
	codes[0] = "z"
	if got := req.Codes(); got[0] != "a" {
		t.Fatalf("requirement aliased caller slice: %v", got)
	}
	got := req.Codes()
	got[1] = "z"
	if req.Codes()[1] != "b" {
		t.Fatalf("Codes returned internal slice")
	}
	if !req.Declared() || Permission("").Declared() {
		t.Fatalf("Declared mismatch")
	}
}
