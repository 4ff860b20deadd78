package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/woozymasta/geopoint/internal/geo"
	"github.com/woozymasta/geopoint/internal/server"

	"gopkg.in/yaml.v3"
)

// record is a successfully parsed point with its 1-based source line (0 for arguments).
type record struct {
	Line   int
	Coords geo.Coordinates
}

// encodeRecords renders records in the requested output format.
func encodeRecords(format string, records []record) ([]byte, error) {
	switch format {
	case "", "text":
		var buf []byte
		for _, rec := range records {
			buf = append(buf, rec.Coords.String()...)
			buf = append(buf, '\n')
		}
		return buf, nil

	case "json", "yaml":
		views := make([]server.CoordinatesResponse, 0, len(records))
		for _, rec := range records {
			views = append(views, server.NewCoordinatesResponse(rec.Coords))
		}
		if format == "yaml" {
			return yaml.Marshal(views)
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	case "geojson":
		features := make([]geo.GeoJSONFeature, 0, len(records))
		for _, rec := range records {
			props := map[string]interface{}{}
			if rec.Line > 0 {
				props["line"] = rec.Line
			}
			features = append(features, geo.NewFeature(rec.Coords, props))
		}
		data, err := json.MarshalIndent(geo.NewFeatureCollection(features...), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
