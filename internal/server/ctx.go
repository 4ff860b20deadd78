package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geopoint/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config *config.Config
}

// NewServerContext initializes the context. Points keep their configuration order.
// The point index is built here so handlers only ever read cfg.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	if err := cfg.Index(); err != nil {
		return nil, fmt.Errorf("index points: %w", err)
	}

	for _, p := range cfg.Points {
		log.Debug().
			Str("point", p.Name).
			Stringer("position", p.Position).
			Strs("aliases", p.Aliases).
			Msg("Point registered")
	}

	log.Info().
		Int("points_count", len(cfg.Points)).
		Msg("Server context initialized successfully")

	return &ServerContext{Config: cfg}, nil
}

// Handler returns the routed API wrapped in the request logger.
func (s *ServerContext) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/coordinates", s.HandleCoordinates)
	mux.HandleFunc("GET /api/points", s.HandlePointsList)
	mux.HandleFunc("GET /api/points/{name}", s.HandlePoint)

	return RequestLogger(mux)
}
