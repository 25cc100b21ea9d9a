package lead

import (
	"context"
	"time"
)

type EventType string

const (
	EventCreated       EventType = "lead.created"
	EventStatusChanged EventType = "lead.status_changed"
	EventAssigned      EventType = "lead.assigned"
	EventNoteAdded     EventType = "lead.note_added"
)

// Event is published after the mutation it describes has committed.
type Event struct {
	Type       EventType `json:"type"`
	LeadID     string    `json:"lead_id"`
	Status     Status    `json:"status"`
	Actor      string    `json:"actor,omitempty"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	LenderID   string    `json:"lender_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
