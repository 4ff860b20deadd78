package geo

import "fmt"

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a point feature.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat] or [Lon, Lat, Alt]
}

// NewFeatureCollection wraps the features into a FeatureCollection.
func NewFeatureCollection(features ...GeoJSONFeature) GeoJSONFeatureCollection {
	if features == nil {
		features = []GeoJSONFeature{}
	}

	return GeoJSONFeatureCollection{Type: "FeatureCollection", Features: features}
}

// NewFeature returns a point Feature for c with the given properties.
func NewFeature(c Coordinates, props map[string]interface{}) GeoJSONFeature {
	if props == nil {
		props = map[string]interface{}{}
	}

	return GeoJSONFeature{
		Type:       "Feature",
		Geometry:   PointGeometry(c),
		Properties: props,
	}
}

// PointGeometry converts c into a GeoJSON Point. Positions are longitude first.
func PointGeometry(c Coordinates) GeoJSONGeometry {
	pos := []float64{c.lon, c.lat}
	if c.hasAlt {
		pos = append(pos, c.alt)
	}

	return GeoJSONGeometry{Type: "Point", Coordinates: pos}
}

// Point validates a Point geometry and converts it back to Coordinates.
func (g GeoJSONGeometry) Point() (Coordinates, error) {
	if g.Type != "Point" {
		return Coordinates{}, fmt.Errorf("%w: geometry type %q is not a Point", ErrInvalidArgument, g.Type)
	}

	switch len(g.Coordinates) {
	case 2:
		return New(g.Coordinates[1], g.Coordinates[0])
	case 3:
		return NewWithAltitude(g.Coordinates[1], g.Coordinates[0], g.Coordinates[2])
	default:
		return Coordinates{}, fmt.Errorf("%w: point must have 2 or 3 positions, got %d", ErrInvalidArgument, len(g.Coordinates))
	}
}
