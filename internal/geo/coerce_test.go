package geo

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFromValues(t *testing.T) {
	tests := []struct {
		name        string
		lat         any
		lon         any
		alt         any
		wantLat     float64
		wantLon     float64
		wantAlt     float64
		wantHasAlt  bool
		wantErr     bool
		errContains string
	}{
		{name: "floats", lat: 40.7128, lon: -74.006, wantLat: 40.7128, wantLon: -74.006},
		{name: "ints", lat: 45, lon: int64(-120), alt: uint8(7), wantLat: 45, wantLon: -120, wantAlt: 7, wantHasAlt: true},
		{name: "float32", lat: float32(0.5), lon: float32(-0.25), wantLat: 0.5, wantLon: -0.25},
		{name: "numeric strings", lat: "40.7128", lon: "-74.006", alt: "10.5", wantLat: 40.7128, wantLon: -74.006, wantAlt: 10.5, wantHasAlt: true},
		{name: "padded strings", lat: " 12 ", lon: "\t34.5", wantLat: 12, wantLon: 34.5},
		{name: "json numbers", lat: json.Number("1.5"), lon: json.Number("-2"), wantLat: 1.5, wantLon: -2},
		{name: "zero altitude is present", lat: 0, lon: 0, alt: 0, wantHasAlt: true},
		{name: "nil latitude", lat: nil, lon: 0, wantErr: true, errContains: "latitude is required"},
		{name: "nil longitude", lat: 0, lon: nil, wantErr: true, errContains: "longitude is required"},
		{name: "non numeric latitude", lat: "north", lon: 0, wantErr: true, errContains: "north"},
		{name: "empty longitude", lat: 0, lon: "", wantErr: true, errContains: "longitude"},
		{name: "boolean latitude", lat: true, lon: 0, wantErr: true, errContains: "latitude must be numeric"},
		{name: "non numeric altitude", lat: 0, lon: 0, alt: "high", wantErr: true, errContains: "altitude"},
		{name: "latitude out of range", lat: "90.5", lon: 0, wantErr: true, errContains: "90.5"},
		{name: "longitude out of range", lat: 0, lon: -181, wantErr: true, errContains: "-181"},
		{name: "latitude range before longitude type", lat: 95, lon: "west", wantErr: true, errContains: "latitude"},
		{name: "NaN string", lat: "NaN", lon: 0, wantErr: true, errContains: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromValues(tt.lat, tt.lon, tt.alt)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromValues() expected error but got %v", got)
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("FromValues() error = %v, want ErrInvalidArgument", err)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("FromValues() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("FromValues() unexpected error = %v", err)
			}
			if got.Latitude() != tt.wantLat || got.Longitude() != tt.wantLon {
				t.Errorf("FromValues() = %v, want %v %v", got, tt.wantLat, tt.wantLon)
			}
			alt, ok := got.Altitude()
			if ok != tt.wantHasAlt || alt != tt.wantAlt {
				t.Errorf("Altitude() = %v, %v; want %v, %v", alt, ok, tt.wantAlt, tt.wantHasAlt)
			}
		})
	}
}
