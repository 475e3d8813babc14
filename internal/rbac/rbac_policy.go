package rbac

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

const (
	ResourceSalaryPeriod   = "salary_period"
	ResourcePayrollSelf    = "payroll_self"
	ResourceBankProfile    = "bank_profile"
	ResourceOwnBankProfile = "own_bank_profile"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionPay    = "pay"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Admins inherit every staff permission through the grouping rule.
var (
	defaultPolicies = [][]string{
		{RoleStaff, ResourcePayrollSelf, ActionRead},
		{RoleStaff, ResourceOwnBankProfile, ActionRead},
		{RoleStaff, ResourceOwnBankProfile, ActionUpdate},

		{RoleAdmin, ResourceSalaryPeriod, ActionCreate},
		{RoleAdmin, ResourceSalaryPeriod, ActionRead},
		{RoleAdmin, ResourceSalaryPeriod, ActionUpdate},
		{RoleAdmin, ResourceSalaryPeriod, ActionPay},
		{RoleAdmin, ResourceBankProfile, ActionRead},
	}

	defaultGroupings = [][]string{
		{RoleAdmin, RoleStaff},
	}
)
