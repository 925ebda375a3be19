package entities

import "time"

// HistoryEvent is an immutable audit entry narrating a change to an installation.
type HistoryEvent struct {
	ID             string    `json:"id"`
	InstallationID string    `json:"installation_id"`
	Descricao      string    `json:"descricao"`
	Usuario        string    `json:"usuario"`
	CreatedAt      time.Time `json:"created_at"`
}

// Observation is a free-text note attached to an installation.
//
// Destaque flags the note for technician attention. Observations are never
// edited; a new one is appended instead.
type Observation struct {
	ID             string    `json:"id"`
	InstallationID string    `json:"installation_id"`
	Texto          string    `json:"texto"`
	Destaque       bool      `json:"destaque"`
	Usuario        string    `json:"usuario"`
	CreatedAt      time.Time `json:"created_at"`
}
