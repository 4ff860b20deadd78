// Package geo handles geographic coordinate values and their encodings.
package geo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Latitude and longitude bounds in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Two or three space separated decimals, each with a mandatory fractional part.
var coordsRegex = regexp.MustCompile(
	`^(-?\d+\.\d+)` + // Latitude
		` (-?\d+\.\d+)` + // Longitude
		`( -?\d+\.\d+)?$`, // Optional altitude
)

// Coordinates is an immutable point in decimal degrees with an optional altitude in meters.
// The zero value is the point 0,0 without altitude.
type Coordinates struct {
	lat    float64
	lon    float64
	alt    float64
	hasAlt bool
}

// New returns validated coordinates without altitude.
func New(latitude, longitude float64) (Coordinates, error) {
	if err := validate(latitude, longitude); err != nil {
		return Coordinates{}, err
	}

	return Coordinates{lat: latitude, lon: longitude}, nil
}

// NewWithAltitude returns validated coordinates with altitude set.
func NewWithAltitude(latitude, longitude, altitude float64) (Coordinates, error) {
	if err := validate(latitude, longitude); err != nil {
		return Coordinates{}, err
	}
	if math.IsNaN(altitude) || math.IsInf(altitude, 0) {
		return Coordinates{}, fmt.Errorf("%w: altitude must be a finite number, got %v", ErrInvalidArgument, altitude)
	}

	return Coordinates{lat: latitude, lon: longitude, alt: altitude, hasAlt: true}, nil
}

// Parse reads coordinates from the "<lat> <lon>" or "<lat> <lon> <alt>" form
// produced by String. Every component needs digits on both sides of the decimal point.
func Parse(text string) (Coordinates, error) {
	if !coordsRegex.MatchString(text) {
		return Coordinates{}, fmt.Errorf("%w: malformed coordinates string %q", ErrInvalidArgument, text)
	}

	parts := strings.Split(text, " ")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		// Overflow yields ±Inf, which the constructors reject as out of range.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Coordinates{}, fmt.Errorf("%w: malformed coordinates string %q", ErrInvalidArgument, text)
		}
		values[i] = v
	}

	if len(values) == 3 {
		return NewWithAltitude(values[0], values[1], values[2])
	}

	return New(values[0], values[1])
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 { return c.lat }

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 { return c.lon }

// Altitude returns the altitude in meters and whether it was specified.
func (c Coordinates) Altitude() (float64, bool) { return c.alt, c.hasAlt }

// HasAltitude reports whether an altitude was specified.
func (c Coordinates) HasAltitude() bool { return c.hasAlt }

// Equal reports whether both values hold the same latitude, longitude and altitude.
func (c Coordinates) Equal(other Coordinates) bool {
	return c == other
}

// String formats the coordinates with six fractional digits per component.
func (c Coordinates) String() string {
	if c.hasAlt {
		return fmt.Sprintf("%f %f %f", c.lat, c.lon, c.alt)
	}

	return fmt.Sprintf("%f %f", c.lat, c.lon)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (c Coordinates) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It exists for decoders only; c is left untouched when the text is invalid.
func (c *Coordinates) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func validate(latitude, longitude float64) error {
	// negated form so that NaN is rejected
	if !(latitude >= MinLatitude && latitude <= MaxLatitude) {
		return fmt.Errorf("%w: latitude must be between %v and %v, got %v",
			ErrInvalidArgument, MinLatitude, MaxLatitude, latitude)
	}
	if !(longitude >= MinLongitude && longitude <= MaxLongitude) {
		return fmt.Errorf("%w: longitude must be between %v and %v, got %v",
			ErrInvalidArgument, MinLongitude, MaxLongitude, longitude)
	}

	return nil
}
