package domain

// Branch is a shop or warehouse that owns agents, deliveries, and staff.
type Branch struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Phone    *string `json:"phone"`
	IsActive bool    `json:"is_active"`
}

// Clone returns a copy that shares no pointers with b.
func (b Branch) Clone() Branch {
	b.Phone = clonePtr(b.Phone)
	return b
}
