// Package handler translates HTTP requests into store and planner calls.
// Handlers hold no state beyond the injected store; every request stands on
// its own.
package handler

import (
	"time"

	"oldisgold-api/internal/store"
)

const dateLayout = "2006-01-02"

type Handler struct {
	store store.Store
}

func New(s store.Store) *Handler {
	return &Handler{store: s}
}

// resolveDate keeps a client-supplied calendar date when it parses as
// YYYY-MM-DD and falls back to the current UTC date otherwise.
func resolveDate(clientDate string) string {
	if _, err := time.Parse(dateLayout, clientDate); err == nil {
		return clientDate
	}
	return time.Now().UTC().Format(dateLayout)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
