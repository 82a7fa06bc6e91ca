package constants

// Global role names carried in the JWT `role` claim.
const (
	RoleOwner   = "owner"   // PG/hostel owner, full access to own properties
	RoleManager = "manager" // property manager appointed by an owner
	RoleTenant  = "tenant"  // resident, self-service endpoints only
)

// AllowedRoles is the whitelist checked on register/role-change.
var AllowedRoles = []string{RoleOwner, RoleManager, RoleTenant}

func IsAllowedRole(r string) bool {
	for _, a := range AllowedRoles {
		if a == r {
			return true
		}
	}
	return false
}
