// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geopoint/internal/config"
	"github.com/woozymasta/geopoint/internal/geo"
)

// CoordinatesResponse is the JSON view of a single point.
type CoordinatesResponse struct {
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty" yaml:"altitude,omitempty"`
	Text      string   `json:"text" yaml:"text"`
}

// NewCoordinatesResponse converts coordinates into the response shape.
func NewCoordinatesResponse(c geo.Coordinates) CoordinatesResponse {
	res := CoordinatesResponse{
		Latitude:  c.Latitude(),
		Longitude: c.Longitude(),
		Text:      c.String(),
	}
	if alt, ok := c.Altitude(); ok {
		res.Altitude = &alt
	}

	return res
}

// HandleCoordinates validates a point given either as ?q=<lat lon [alt]>
// or as separate ?lat=&lon=&alt= parameters.
func (s *ServerContext) HandleCoordinates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		c   geo.Coordinates
		err error
	)

	if query.Has("q") {
		c, err = geo.Parse(query.Get("q"))
	} else {
		var lat, lon, alt any
		if query.Has("lat") {
			lat = query.Get("lat")
		}
		if query.Has("lon") {
			lon = query.Get("lon")
		}
		if query.Has("alt") {
			alt = query.Get("alt")
		}
		c, err = geo.FromValues(lat, lon, alt)
	}

	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, NewCoordinatesResponse(c))
}

// HandlePointsList serves the configured named points.
func (s *ServerContext) HandlePointsList(w http.ResponseWriter, r *http.Request) {
	points := s.Config.Points
	if points == nil {
		points = []config.Point{}
	}

	writeJSON(w, r, http.StatusOK, points)
}

// HandlePoint serves one named point, as GeoJSON when ?format=geojson is set.
func (s *ServerContext) HandlePoint(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Config.Resolve(r.PathValue("name"))
	if !ok {
		writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "point not found"})
		return
	}

	switch r.URL.Query().Get("format") {
	case "geojson":
		props := map[string]interface{}{"name": p.Name}
		if p.Description != "" {
			props["description"] = p.Description
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(geo.NewFeature(p.Position, props))
	case "", "json":
		writeJSON(w, r, http.StatusOK, p)
	default:
		writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "format must be json or geojson"})
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Failed to encode response")
	}
}

// writeError maps validation failures to 400 and anything else to 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, geo.ErrInvalidArgument) {
		writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
