// Package queue defines the domain events exchanged over the message broker
// plus the publisher and the audit-log consumer.
package queue

// TicketPurchasedQueue and ShowtimeScheduledQueue name the durable queues
// used for domain events.  Routing uses the default exchange, so the queue
// name doubles as the routing key.
const (
	TicketPurchasedQueue   = "ticket.purchased"
	ShowtimeScheduledQueue = "showtime.scheduled"
)

// TicketPurchasedEvent is published after a ticket sale commits.  It carries
// enough for downstream consumers to log or notify without querying the
// primary database.
type TicketPurchasedEvent struct {
	TicketID      string `json:"ticket_id"`
	ShowtimeID    string `json:"showtime_id"`
	MovieID       string `json:"movie_id"`
	RoomID        string `json:"room_id"`
	PurchaserName string `json:"purchaser_name"`
	StartsAt      string `json:"starts_at"`
	PurchasedAt   string `json:"purchased_at"`
}

// ShowtimeScheduledEvent is published after a showtime is created.
type ShowtimeScheduledEvent struct {
	ShowtimeID  string `json:"showtime_id"`
	MovieID     string `json:"movie_id"`
	RoomID      string `json:"room_id"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	ScheduledAt string `json:"scheduled_at"`
}
