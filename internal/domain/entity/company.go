package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Es dueña de sus bodegas; productos e inventario quedan acotados a ella.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
