// Package export writes converted trail data to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/trails/internal/geo"
	"github.com/woozymasta/trails/internal/trail"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

// Supported output formats. GeoJSON and Shapefile need coordinates and are
// only available for located records.
const (
	FormatJSON      Format = "json"
	FormatMinJSON   Format = "min"
	FormatYAML      Format = "yaml"
	FormatGeoJSON   Format = "geojson"
	FormatShapefile Format = "shp"
)

// Indent is the JSON indentation of the default output.
const Indent = "    "

// Encode writes v to w in one of the plain formats (json, min, yaml).
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", Indent)
		return enc.Encode(v)

	case FormatMinJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return err
		}
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		return m.Minify("application/json", w, &buf)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(len(Indent))
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unsupported format %q", format)
}

// WriteFile creates path and encodes v into it. The file is truncated on
// open, so a failed write can leave partial content behind.
func WriteFile(path string, v any, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return Encode(f, v, format)
}

// WriteRecords writes records in any supported format, including the
// location-only geojson and shp outputs.
func WriteRecords(path string, records []trail.Record, format Format) error {
	switch format {
	case FormatGeoJSON:
		return WriteFile(path, geo.FromRecords(records), FormatJSON)
	case FormatShapefile:
		_, err := WriteShapefile(path, records)
		return err
	}
	return WriteFile(path, records, format)
}
