/*
Copyright © 2019 the HazPlume authors.
This file is part of HazPlume.

HazPlume is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HazPlume is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HazPlume.  If not, see <http://www.gnu.org/licenses/>.
*/

package hazplumeutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
)

// wgs84 is the projection of all output geometry.
const wgs84 = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["Degree",0.017453292519943295]]`

// outputExtensions are the supported output file types.
var outputExtensions = []string{".geojson", ".json", ".shp"}

type feature struct {
	Type       string                 `json:"type"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type featureCollection struct {
	Type     string     `json:"type"`
	Features []*feature `json:"features"`
}

// closeRings returns a copy of p with the first vertex of each ring
// repeated at its end, as required by GeoJSON and shapefiles.
func closeRings(p geom.Polygon) geom.Polygon {
	o := make(geom.Polygon, len(p))
	for i, r := range p {
		ring := make(geom.Path, len(r), len(r)+1)
		copy(ring, r)
		if len(r) > 0 && r[0] != r[len(r)-1] {
			ring = append(ring, r[0])
		}
		o[i] = ring
	}
	return o
}

func newFeature(g geom.Geom, props map[string]interface{}) (*feature, error) {
	if p, ok := g.(geom.Polygon); ok {
		g = closeRings(p)
	}
	gj, err := geojson.ToGeoJSON(g)
	if err != nil {
		return nil, err
	}
	return &feature{Type: "Feature", Geometry: gj, Properties: props}, nil
}

// features returns the map geometry of results: the hazard footprints,
// then the wind arrow and the touchdown point of each result.
func features(results ...*Result) ([]*feature, error) {
	var o []*feature
	for _, r := range results {
		for _, f := range r.Footprints {
			zone := r.Zones.All()[f.Level]
			ft, err := newFeature(f.Polygon, map[string]interface{}{
				"scenario":  r.Name,
				"chemical":  r.Scenario.Chemical,
				"kind":      "zone",
				"zone":      f.Level.String(),
				"distance":  f.Distance,
				"threshold": zone.Threshold,
			})
			if err != nil {
				return nil, err
			}
			o = append(o, ft)
		}
		ft, err := newFeature(r.Arrow, map[string]interface{}{
			"scenario":       r.Name,
			"kind":           "wind",
			"wind_direction": r.Scenario.WindDirection,
			"wind_speed":     r.Scenario.WindSpeed,
			"humidity":       r.Scenario.Humidity,
			"pressure":       r.Scenario.Pressure,
		})
		if err != nil {
			return nil, err
		}
		o = append(o, ft)
		ft, err = newFeature(r.Touchdown.Point, map[string]interface{}{
			"scenario":         r.Name,
			"kind":             "touchdown",
			"distance":         r.Touchdown.Distance,
			"effective_height": r.Touchdown.EffectiveHeight,
		})
		if err != nil {
			return nil, err
		}
		o = append(o, ft)
	}
	return o, nil
}

// WriteGeoJSON writes the map geometry of results to w as a GeoJSON
// FeatureCollection in longitude-latitude coordinates.
func WriteGeoJSON(w io.Writer, results ...*Result) error {
	f, err := features(results...)
	if err != nil {
		return fmt.Errorf("hazplumeutil: creating GeoJSON: %v", err)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(featureCollection{Type: "FeatureCollection", Features: f})
}

// WriteShapefile writes the hazard footprints and wind arrows of results
// to a polygon shapefile at path, along with a .prj file.
func WriteShapefile(path string, results ...*Result) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(base + ext)
	}
	e, err := shp.NewEncoderFromFields(base+".shp", goshp.POLYGON,
		goshp.StringField("scenario", 40),
		goshp.StringField("chemical", 40),
		goshp.StringField("zone", 10),
		goshp.FloatField("distance", 14, 1),
		goshp.FloatField("threshold", 14, 6),
	)
	if err != nil {
		return fmt.Errorf("hazplumeutil: creating shapefile: %v", err)
	}
	for _, r := range results {
		for _, f := range r.Footprints {
			zone := r.Zones.All()[f.Level]
			if err = e.EncodeFields(closeRings(f.Polygon), r.Name, r.Scenario.Chemical,
				f.Level.String(), f.Distance, zone.Threshold); err != nil {
				e.Close()
				return fmt.Errorf("hazplumeutil: writing shapefile: %v", err)
			}
		}
		if err = e.EncodeFields(closeRings(r.Arrow), r.Name, r.Scenario.Chemical,
			"wind", 0.0, 0.0); err != nil {
			e.Close()
			return fmt.Errorf("hazplumeutil: writing shapefile: %v", err)
		}
	}
	e.Close()
	return writePrj(base + ".prj")
}

func writePrj(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hazplumeutil: creating .prj file: %v", err)
	}
	if _, err = f.Write([]byte(wgs84)); err != nil {
		f.Close()
		return fmt.Errorf("hazplumeutil: writing .prj file: %v", err)
	}
	return f.Close()
}

// WriteOutput writes results to path, choosing the format from the file
// extension.
func WriteOutput(path string, results ...*Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return WriteShapefile(path, results...)
	case ".geojson", ".json":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("hazplumeutil: creating output file: %v", err)
		}
		if err = WriteGeoJSON(f, results...); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("hazplumeutil: unsupported output file type %s", path)
	}
}
