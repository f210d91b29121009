package handler

import (
	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/clock"
)

// ApiaryHandler handles the player-facing apiary endpoints
type ApiaryHandler struct {
	svc   apiary.Service
	clock clock.Clock
}

// NewApiaryHandler creates a new apiary handler
func NewApiaryHandler(svc apiary.Service, c clock.Clock) *ApiaryHandler {
	if c == nil {
		c = clock.System{}
	}
	return &ApiaryHandler{svc: svc, clock: c}
}
