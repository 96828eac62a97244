package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxPurchaserNameLen bounds the purchaser name column.
const MaxPurchaserNameLen = 150

// Ticket is an admission record for a showtime.  Tickets are append-only:
// they are never updated or deleted once sold.
type Ticket struct {
	ID            string    // tickets.id (UUID)
	ShowtimeID    string    // tickets.showtime_id
	PurchaserName string    // tickets.purchaser_name (<= 150 chars)
	CreatedAt     time.Time // tickets.created_at
}

// NewTicket stamps identity and the purchase timestamp on a fresh ticket.
func NewTicket(showtimeID, purchaserName string) *Ticket {
	return &Ticket{
		ID:            uuid.NewString(),
		ShowtimeID:    showtimeID,
		PurchaserName: purchaserName,
		CreatedAt:     time.Now().UTC(),
	}
}
