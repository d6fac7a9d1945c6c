package domain

import "time"

// Customer receives deliveries.
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Clone returns a copy that shares no pointers with c.
func (c Customer) Clone() Customer {
	c.Email = clonePtr(c.Email)
	c.Address = clonePtr(c.Address)
	return c
}
