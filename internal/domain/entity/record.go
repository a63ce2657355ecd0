package entity

import (
	"encoding/json"
	"time"
)

// ChartRecord is a computed chart as persisted by the chart store.
type ChartRecord struct {
	// Fingerprint is the versioned cache key of the request.
	Fingerprint    string
	EngineVersion  string
	Request        json.RawMessage
	Chart          *Chart
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
