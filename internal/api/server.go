package api

import (
	"context"

	"github.com/vytor/chronoquest/internal/services"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	GameService services.GameService
	DB          Pinger
	// DevTools exposes the date override endpoints.
	DevTools bool
}
