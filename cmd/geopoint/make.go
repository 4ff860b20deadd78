package main

import (
	"github.com/woozymasta/geopoint/internal/geo"
)

// MakeCommand builds a point from separate values.
// Negative values must follow "--", e.g. `geopoint make -- 40.7128 -74.006`.
type MakeCommand struct {
	Format string `short:"f" long:"format" description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"geojson" default:"text"`

	Args struct {
		Latitude  string `positional-arg-name:"LAT" description:"Latitude in decimal degrees" required:"yes"`
		Longitude string `positional-arg-name:"LON" description:"Longitude in decimal degrees" required:"yes"`
		Altitude  string `positional-arg-name:"ALT" description:"Optional altitude in meters"`
	} `positional-args:"yes"`
}

// Execute implements flags.Commander.
func (c *MakeCommand) Execute(_ []string) error {
	var alt any
	if c.Args.Altitude != "" {
		alt = c.Args.Altitude
	}

	coords, err := geo.FromValues(c.Args.Latitude, c.Args.Longitude, alt)
	if err != nil {
		return err
	}

	data, err := encodeRecords(c.Format, []record{{Coords: coords}})
	if err != nil {
		return err
	}

	return writeOutput("", data)
}
