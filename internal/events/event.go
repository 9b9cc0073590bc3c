// Package events publishes catalog change notifications to the message broker.
// Consumers can rebuild search indexes or sweep orphaned assets without
// querying the primary database.
package events

import "time"

const (
	MovieCreated  = "movie.created"
	MovieUpdated  = "movie.updated"
	MovieDeleted  = "movie.deleted"
	AssetOrphaned = "asset.orphaned"
)

// Event is the JSON payload of every message. Type doubles as routing key.
type Event struct {
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	Title      string    `json:"title,omitempty"`
	AssetURL   string    `json:"asset_url,omitempty"`
	Container  string    `json:"container,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
