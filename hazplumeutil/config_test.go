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
	"math"
	"testing"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazplume"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestScenarioConfig(t *testing.T) {
	c := ScenarioConfig{
		Name:          "test",
		Chemical:      "ammonia",
		EmissionRate:  7200,
		EmissionUnits: "kg/h",
		WindSpeed:     3,
		Stability:     "f",
		Longitude:     10,
		Latitude:      50,
	}
	s, err := c.Scenario()
	if err != nil {
		t.Fatal(err)
	}
	if different(s.EmissionRate, 2, 1.e-12) {
		t.Errorf("emission rate = %g kg/s, want 2", s.EmissionRate)
	}
	if s.Stability != hazplume.ClassF {
		t.Errorf("stability = %s", s.Stability)
	}
	if s.Source.X != 10 || s.Source.Y != 50 {
		t.Errorf("source = %v", s.Source)
	}

	for name, bad := range map[string]ScenarioConfig{
		"units":    {EmissionRate: 1, EmissionUnits: "tons/year"},
		"negative": {EmissionRate: -1},
		"latitude": {EmissionRate: 1, Latitude: 91},
	} {
		if _, err := bad.Scenario(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestScenarioFromConfig(t *testing.T) {
	cfg := viper.New()
	cfg.SetConfigFile("testdata/config.toml")
	if err := cfg.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	s, err := ScenarioFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if different(s.EmissionRate, 1, 1.e-12) {
		t.Errorf("emission rate = %g", s.EmissionRate)
	}
	if s.Chemical != "chlorine" || s.WindSpeed != 5 || s.WindDirection != 270 || s.Stability != hazplume.ClassD {
		t.Errorf("scenario = %+v", s)
	}
	if s.Source.X != -93.26 || s.Source.Y != 44.98 {
		t.Errorf("source = %v", s.Source)
	}
}

func TestModelFromConfig(t *testing.T) {
	cfg := viper.New()
	t.Run("defaults", func(t *testing.T) {
		m, err := ModelFromConfig(cfg, logrus.StandardLogger())
		if err != nil {
			t.Fatal(err)
		}
		if m.Config != hazplume.DefaultConfig() {
			t.Errorf("config = %+v", m.Config)
		}
		if _, ok := m.Chemicals.Lookup("chlorine"); !ok {
			t.Error("missing built-in chemicals")
		}
	})
	t.Run("overrides", func(t *testing.T) {
		cfg.Set("Model.GridMax", 20000.)
		cfg.Set("Model.SearchTolerance", 1.)
		defer cfg.Set("Model.GridMax", 0.)
		defer cfg.Set("Model.SearchTolerance", 0.)
		m, err := ModelFromConfig(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		if m.GridMax != 20000 || m.SearchTolerance != 1 {
			t.Errorf("config = %+v", m.Config)
		}
	})
	t.Run("search bound inside grid", func(t *testing.T) {
		cfg.Set("Model.GridMax", 80000.)
		cfg.Set("Model.SearchUpperBound", 60000.)
		defer cfg.Set("Model.GridMax", 0.)
		defer cfg.Set("Model.SearchUpperBound", 0.)
		if _, err := ModelFromConfig(cfg, nil); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("chemical table", func(t *testing.T) {
		cfg.Set("ChemicalTable", "testdata/chemicals.toml")
		defer cfg.Set("ChemicalTable", "")
		m, err := ModelFromConfig(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := m.Chemicals.Lookup("widgetine"); !ok {
			t.Error("missing table chemical")
		}
		if _, ok := m.Chemicals.Lookup("ammonia"); !ok {
			t.Error("missing built-in chemical")
		}
	})
	t.Run("missing table", func(t *testing.T) {
		cfg.Set("ChemicalTable", "testdata/does_not_exist.toml")
		defer cfg.Set("ChemicalTable", "")
		if _, err := ModelFromConfig(cfg, nil); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestLoadBatch(t *testing.T) {
	c, err := LoadBatch("testdata/batch.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 4 {
		t.Fatalf("got %d scenarios", len(c))
	}
	if c[2].Name != "refinery stack" || c[2].StackDiameter != 2 || c[2].EmissionUnits != "kg/h" {
		t.Errorf("scenario 3 = %+v", c[2])
	}
	if _, err := LoadBatch("testdata/config.toml"); err == nil {
		t.Error("expected an error for a file without scenarios")
	}
}

func TestCheckOutputFile(t *testing.T) {
	if _, err := checkOutputFile(""); err == nil {
		t.Error("expected an error for an empty file name")
	}
	if _, err := checkOutputFile("no_such_dir/out.geojson"); err == nil {
		t.Error("expected an error for a missing directory")
	}
	if _, err := checkOutputFile("out.txt", outputExtensions...); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
	if f, err := checkOutputFile("testdata/out.SHP", outputExtensions...); err != nil || f != "testdata/out.SHP" {
		t.Errorf("%s, %v", f, err)
	}
}
