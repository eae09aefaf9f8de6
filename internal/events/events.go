package events

import (
	"encoding/json"
	"time"
)

const (
	TypeRunStarted   = "run_started"
	TypeRunFinished  = "run_finished"
	TypeLeadResolved = "lead_resolved"
	TypeCacheCleared = "cache_cleared"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// LeadResolved is the payload clients render as a live feed row.
type LeadResolved struct {
	Company       string `json:"company"`
	PrimaryDomain string `json:"primaryDomain,omitempty"`
	Contacts      int    `json:"contacts"`
	FromCache     bool   `json:"fromCache,omitempty"`
}

type RunFinished struct {
	Processed int    `json:"processed"`
	Resolved  int    `json:"resolved"`
	Skipped   int    `json:"skipped"`
	Elapsed   string `json:"elapsed"`
	Stopped   string `json:"stopped,omitempty"`
}
