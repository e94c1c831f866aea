package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/trails/internal/trail"

	shp "github.com/jonas-p/go-shp"
)

// DBF column layout of the exported point layer. Names are capped at 10 characters.
var shapeFields = []shp.Field{
	shp.NumberField("FID", 10),
	shp.StringField("ACCESSNAME", 254),
	shp.StringField("ADDRESS", 254),
	shp.StringField("BIKETRAIL", 16),
	shp.StringField("FISHING", 16),
	shp.StringField("ADATRAIL", 32),
}

// ShapefilePath forces the .shp extension the companion file names are derived from.
func ShapefilePath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".shp") {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".shp"
}

// WriteShapefile writes records as a POINT shapefile (path plus the .shx and
// .dbf companions). Records without coordinates have no geometry and are
// skipped; the number of written points is returned.
func WriteShapefile(path string, records []trail.Record) (int, error) {
	path = ShapefilePath(path)

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return 0, err
	}

	written, err := writePoints(w, records)
	w.Close()
	if err != nil {
		return written, err
	}

	return written, fixDBFName(path)
}

func writePoints(w *shp.Writer, records []trail.Record) (int, error) {
	if err := w.SetFields(shapeFields); err != nil {
		return 0, err
	}

	written := 0
	for _, r := range records {
		if !r.HasLocation() {
			continue
		}

		row := int(w.Write(&shp.Point{X: *r.Longitude, Y: *r.Latitude}))
		values := []interface{}{r.FID, r.AccessName, r.Address, r.BikeTrail, r.Fishing, r.ADATrail}
		for field, v := range values {
			if err := w.WriteAttribute(row, field, v); err != nil {
				return written, fmt.Errorf("write attribute %s of FID %d: %w",
					shapeFields[field].String(), r.FID, err)
			}
		}
		written++
	}

	return written, nil
}

// fixDBFName moves the attribute table to <base>.dbf. go-shp v0.1.1 drops the
// dot and writes <base>dbf, which readers never look for.
func fixDBFName(path string) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	misnamed := base + "dbf"

	if _, err := os.Stat(misnamed); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := os.Rename(misnamed, base+".dbf"); err != nil {
		return fmt.Errorf("rename attribute table: %w", err)
	}
	return nil
}
