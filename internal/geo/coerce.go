package geo

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// FromValues builds coordinates from loosely typed input such as query
// parameters or decoded JSON. Numbers and numeric strings are accepted.
// A nil altitude means the altitude is not specified.
func FromValues(latitude, longitude, altitude any) (Coordinates, error) {
	lat, err := toFloat("latitude", latitude)
	if err != nil {
		return Coordinates{}, err
	}
	if err := validate(lat, 0); err != nil {
		return Coordinates{}, err
	}

	lon, err := toFloat("longitude", longitude)
	if err != nil {
		return Coordinates{}, err
	}

	if altitude == nil {
		return New(lat, lon)
	}

	alt, err := toFloat("altitude", altitude)
	if err != nil {
		return Coordinates{}, err
	}

	return NewWithAltitude(lat, lon, alt)
}

// toFloat rejects values that cast would silently map to a number (nil, bool, "").
func toFloat(field string, v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	case bool:
		return 0, fmt.Errorf("%w: %s must be numeric, got %v", ErrInvalidArgument, field, t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fmt.Errorf("%w: %s must be numeric, got %q", ErrInvalidArgument, field, t)
		}
		v = s
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric, got %#v", ErrInvalidArgument, field, v)
	}

	return f, nil
}
