package auth

// Role is the closed set of caller roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// roleRank orders roles for minimum-role comparisons.
var roleRank = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

// ParseRole converts a claim string into a Role.
// Unknown values return false; callers must treat them as unauthorized.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleRank[r]
	return r, ok
}

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role meets the given minimum role.
// Unknown roles never satisfy any minimum.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	return rank >= roleRank[min]
}

// Identity is the verified caller identity derived from a token.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
