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
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	Root.SetArgs(args)
	if err := Root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return buf.String()
}

func TestVersion(t *testing.T) {
	out := runCommand(t, "version")
	if !strings.Contains(out, "HazPlume v") {
		t.Errorf("output = %q", out)
	}
}

func TestChemicalsCommand(t *testing.T) {
	out := runCommand(t, "chemicals")
	for _, name := range []string{"chlorine", "ammonia", "phosgene"} {
		if !strings.Contains(out, name) {
			t.Errorf("%s missing from output:\n%s", name, out)
		}
	}
}

func TestZonesCommand(t *testing.T) {
	defer setCfg("config", "testdata/config.toml")()
	out := runCommand(t, "zones")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("output:\n%s", out)
	}
	for _, d := range []string{"653", "2623", "6021"} {
		if !strings.Contains(lines[1], d) {
			t.Errorf("zone distance %s missing from %q", d, lines[1])
		}
	}
}

// setCfg sets key in Cfg and returns a function that restores its
// previous value.
func setCfg(key string, value interface{}) func() {
	prev := Cfg.Get(key)
	Cfg.Set(key, value)
	return func() { Cfg.Set(key, prev) }
}

func TestFootprintCommand(t *testing.T) {
	const fname = "testdata/tmp_footprint.geojson"
	defer os.Remove(fname)
	defer setCfg("config", "testdata/config.toml")()
	defer setCfg("OutputFile", fname)()
	runCommand(t, "footprint")
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	var fc struct{ Features []interface{} }
	if err := json.Unmarshal(b, &fc); err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 5 {
		t.Errorf("got %d features", len(fc.Features))
	}
}

func TestBatchCommand(t *testing.T) {
	const (
		fname   = "testdata/tmp_batch.geojson"
		metrics = "testdata/tmp_batch.prom"
	)
	defer os.Remove(fname)
	defer os.Remove(metrics)
	defer setCfg("BatchFile", "testdata/batch.toml")()
	defer setCfg("OutputFile", fname)()
	defer setCfg("MetricsFile", metrics)()
	out := runCommand(t, "batch")
	for _, name := range []string{"rail yard", "refinery stack", "rail yard, duplicate"} {
		if !strings.Contains(out, name) {
			t.Errorf("%s missing from output:\n%s", name, out)
		}
	}
	if _, err := os.Stat(fname); err != nil {
		t.Error(err)
	}
	b, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hazplume_operation_duration_seconds") {
		t.Errorf("metrics file:\n%s", b)
	}
}

func TestBatchCommandNoFile(t *testing.T) {
	defer setCfg("BatchFile", "")()
	Root.SetArgs([]string{"batch"})
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	if err := Root.Execute(); err == nil {
		t.Error("expected an error without a BatchFile")
	}
}
