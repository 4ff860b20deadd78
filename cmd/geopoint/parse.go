package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/geopoint/internal/geo"

	"github.com/rs/zerolog/log"
)

// ParseCommand reads points in "<lat> <lon> [alt]" form and re-emits the valid ones.
// Points starting with a minus sign must follow "--" on the command line.
type ParseCommand struct {
	Input  string `short:"i" long:"in"     description:"Input file, one point per line. Reads from stdin if empty and no points are given"`
	Output string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"geojson" default:"text"`
	Strict bool   `short:"s" long:"strict" description:"Fail on the first invalid point"`

	Args struct {
		Points []string `positional-arg-name:"POINT" description:"Point such as \"40.712800 -74.006000\""`
	} `positional-args:"yes"`
}

// Execute implements flags.Commander.
func (c *ParseCommand) Execute(_ []string) error {
	var (
		records []record
		invalid int
		err     error
	)

	if len(c.Args.Points) > 0 {
		records, invalid, err = parseArgs(c.Args.Points, c.Strict)
	} else {
		var in io.Reader = os.Stdin
		if c.Input != "" {
			f, openErr := os.Open(c.Input)
			if openErr != nil {
				return fmt.Errorf("open input: %w", openErr)
			}
			defer func() { _ = f.Close() }()
			in = f
		}
		records, invalid, err = parseLines(in, c.Strict)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return errors.New("no valid points found")
	}

	data, err := encodeRecords(c.Format, records)
	if err != nil {
		return err
	}
	if err := writeOutput(c.Output, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Debug().
		Int("valid", len(records)).
		Int("invalid", invalid).
		Str("format", c.Format).
		Msg("Points converted")

	return nil
}

func parseArgs(points []string, strict bool) ([]record, int, error) {
	records := make([]record, 0, len(points))
	invalid := 0

	for _, p := range points {
		coords, err := geo.Parse(p)
		if err != nil {
			if strict {
				return nil, 0, err
			}
			log.Warn().Err(err).Str("input", p).Msg("Skipping invalid point")
			invalid++
			continue
		}
		records = append(records, record{Coords: coords})
	}

	return records, invalid, nil
}

// parseLines parses one point per line. Blank lines and lines starting with '#' are ignored.
func parseLines(r io.Reader, strict bool) ([]record, int, error) {
	var records []record
	invalid := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		coords, err := geo.Parse(line)
		if err != nil {
			if strict {
				return nil, 0, fmt.Errorf("line %d: %w", lineNo, err)
			}
			log.Warn().Err(err).Int("line", lineNo).Msg("Skipping invalid point")
			invalid++
			continue
		}

		records = append(records, record{Line: lineNo, Coords: coords})
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}

	return records, invalid, nil
}
