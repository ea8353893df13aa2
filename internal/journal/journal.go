// Package journal provides delivery journaling for submitted batches.
//
// # Interface Design
//
// The journal records one Delivery per send attempt: what was submitted,
// where, when, and the raw response the Interface5 instance returned. The
// response bytes are stored verbatim and never interpreted.
//
// Journaling is strictly app-side support. The request builder itself holds
// no persistent state; a delivery record is written only after the HTTPS
// exchange has completed.
//
// # Implementations
//
// The mongodb sub-package provides a production implementation. MemStore is
// an in-memory implementation for tests and journal-less development runs.
//
// # Concurrency
//
// All store implementations must be safe for concurrent use from multiple
// goroutines.
package journal

import (
	"context"
	"time"
)

// Delivery is the journal record for a single batch submission.
type Delivery struct {
	ID            string    `bson:"_id"`
	RequestName   string    `bson:"request_name"`
	Endpoint      string    `bson:"endpoint"`
	DocumentCount int       `bson:"document_count"`
	BodyBytes     int       `bson:"body_bytes"`
	StatusCode    int       `bson:"status_code"`
	SubmittedAt   time.Time `bson:"submitted_at"`
	Response      []byte    `bson:"response,omitempty"`
}

// Filter narrows ListDeliveries results. Zero values are ignored.
type Filter struct {
	RequestName string
	Since       time.Time
	Limit       int
}

// Store records and retrieves batch deliveries
type Store interface {
	// RecordDelivery persists a delivery record
	RecordDelivery(ctx context.Context, delivery *Delivery) error

	// GetDelivery returns a delivery by ID, or nil when absent
	GetDelivery(ctx context.Context, id string) (*Delivery, error)

	// ListDeliveries returns deliveries matching the filter, newest first
	ListDeliveries(ctx context.Context, filter *Filter) ([]*Delivery, error)

	// Ping checks store connectivity
	Ping(ctx context.Context) error

	// Close releases store resources
	Close(ctx context.Context) error
}
