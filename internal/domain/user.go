package domain

// DefaultUserRole is assigned to every registered user.
const DefaultUserRole = "admin"

// User is the console operator account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
	BranchID *int64 `json:"branch_id"`
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	u.BranchID = clonePtr(u.BranchID)
	return u
}
