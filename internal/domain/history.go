package domain

import "time"

// QueryType tags which kind of operation a history entry audits.
type QueryType string

const (
	QueryTypeAddress  QueryType = "address_query"
	QueryTypeDistance QueryType = "distance_calculation"
)

// HistoryEntry is one append-only audit record. Payloads are opaque snapshots
// of the request and its outcome taken at append time; nothing ever rewrites
// them afterwards.
type HistoryEntry struct {
	ID            string
	QueryType     QueryType
	QueryPayload  string
	ResultPayload string
	CreatedAt     time.Time
}
