package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexInt(t *testing.T) {
	cases := []struct {
		in   string
		want FlexInt
		err  bool
	}{
		{in: `12`, want: 12},
		{in: `"12"`, want: 12},
		{in: `" 7 "`, want: 7},
		{in: `12.0`, want: 12},
		{in: `""`, want: 0},
		{in: `null`, want: 0},
		{in: `"abc"`, err: true},
		{in: `true`, err: true},
	}
	for _, tc := range cases {
		var got FlexInt
		err := json.Unmarshal([]byte(tc.in), &got)
		if (err != nil) != tc.err {
			t.Fatalf("%s: err = %v", tc.in, err)
		}
		if !tc.err && got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFlexStringUserType(t *testing.T) {
	for _, in := range []string{`{"userType":1}`, `{"userType":"1"}`} {
		var u UserVO
		if err := json.Unmarshal([]byte(in), &u); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if u.UserType.String() != UserTypeAdmin {
			t.Fatalf("%s: userType = %q", in, u.UserType)
		}
	}
}

func TestUserVOWithoutToken(t *testing.T) {
	u := &UserVO{
		UserAccount:     "ada",
		PermissionCodes: []string{"a"},
		Token:           &TokenInfo{TokenName: "sa-tok", TokenValue: "abc"},
	}
	stripped := u.WithoutToken()
	if stripped.Token != nil || u.Token == nil {
		t.Fatalf("WithoutToken must copy, not mutate")
	}
	stripped.PermissionCodes[0] = "z"
	if u.PermissionCodes[0] != "a" {
		t.Fatalf("permission codes are shared")
	}
	if (*UserVO)(nil).WithoutToken() != nil {
		t.Fatalf("nil user should stay nil")
	}
	if u.DisplayName() != "ada" {
		t.Fatalf("display name = %q", u.DisplayName())
	}
}

func TestEffectivePageSize(t *testing.T) {
	var p PortalPageResult[NewsVO]
	if err := json.Unmarshal([]byte(`{"size":"20"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.EffectivePageSize() != 20 {
		t.Fatalf("fallback size = %d", p.EffectivePageSize())
	}
	p.PageSize = 5
	if p.EffectivePageSize() != 5 {
		t.Fatalf("pageSize should win")
	}
}
