package auth

import "testing"

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleUser, RoleUser, true},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleUser, RoleAdmin, false},
		{Role("superuser"), RoleUser, false},
		{Role(""), RoleUser, false},
	}

	for _, tt := range tests {
		if got := tt.role.AtLeast(tt.min); got != tt.want {
			t.Errorf("%q.AtLeast(%q) = %v, want %v", tt.role, tt.min, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Errorf("ParseRole(admin) = %q, %v", r, ok)
	}
	if r, ok := ParseRole("user"); !ok || r != RoleUser {
		t.Errorf("ParseRole(user) = %q, %v", r, ok)
	}
	if _, ok := ParseRole("root"); ok {
		t.Errorf("ParseRole(root) should not be valid")
	}
}
