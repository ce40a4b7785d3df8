package user

// Capability is a coarse permission evaluated per resource before any
// ownership check. Ownership (own loan, own fund application) is enforced by
// the usecases on top of this table.
type Capability string

const (
	CapViewOwn Capability = "view_own"
	CapViewAll Capability = "view_all"
	CapCreate  Capability = "create"
	CapMutate  Capability = "mutate"
)

type Resource string

const (
	ResourceFunds    Resource = "funds"
	ResourceLoans    Resource = "loans"
	ResourcePayments Resource = "payments"
	ResourcePolicies Resource = "policies"
)

var grants = map[Role]map[Resource][]Capability{
	RoleProvider: {
		ResourceFunds: {CapViewOwn, CapCreate},
	},
	RoleCustomer: {
		ResourceLoans:    {CapViewOwn, CapCreate},
		ResourcePayments: {CapViewOwn, CapCreate},
	},
	RoleBank: {
		ResourceFunds:    {CapViewAll, CapMutate},
		ResourceLoans:    {CapViewAll, CapMutate},
		ResourcePayments: {CapViewAll, CapCreate},
		ResourcePolicies: {CapViewOwn, CapCreate},
	},
}

// Can reports whether the role holds the capability on the resource.
func (r Role) Can(res Resource, cap Capability) bool {
	for _, c := range grants[r][res] {
		if c == cap {
			return true
		}
	}
	return false
}
