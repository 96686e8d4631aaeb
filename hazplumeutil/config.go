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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazplume"
	"github.com/spatialmodel/hazplume/chemical"
)

// ScenarioConfig holds the configuration of a single release, in the
// form used by configuration files, flags, and batch files.
type ScenarioConfig struct {
	Name               string  `toml:"name"`
	Chemical           string  `toml:"chemical"`
	EmissionRate       float64 `toml:"emission_rate"`
	EmissionUnits      string  `toml:"emission_units"`
	ReleaseHeight      float64 `toml:"release_height"`
	WindSpeed          float64 `toml:"wind_speed"`
	WindDirection      float64 `toml:"wind_direction"`
	Stability          string  `toml:"stability"`
	AmbientTemperature float64 `toml:"ambient_temperature"`
	ReleaseTemperature float64 `toml:"release_temperature"`
	Longitude          float64 `toml:"longitude"`
	Latitude           float64 `toml:"latitude"`
	StackDiameter      float64 `toml:"stack_diameter"`
	ExitVelocity       float64 `toml:"exit_velocity"`
	Humidity           float64 `toml:"humidity"`
	Pressure           float64 `toml:"pressure"`
}

// Scenario converts c to a model scenario, converting the emission rate
// to kg/s.
func (c ScenarioConfig) Scenario() (*hazplume.Scenario, error) {
	units := c.EmissionUnits
	if units == "" {
		units = "kg/s"
	}
	q, err := hazplume.ConvertEmissionRate(c.EmissionRate, units)
	if err != nil {
		return nil, fmt.Errorf("hazplumeutil: scenario %q: %v", c.Name, err)
	}
	if q.Value() < 0 {
		return nil, fmt.Errorf("hazplumeutil: scenario %q: negative emission rate %g", c.Name, c.EmissionRate)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return nil, fmt.Errorf("hazplumeutil: scenario %q: latitude %g out of range", c.Name, c.Latitude)
	}
	return &hazplume.Scenario{
		EmissionRate:       q.Value(),
		ReleaseHeight:      c.ReleaseHeight,
		WindSpeed:          c.WindSpeed,
		WindDirection:      c.WindDirection,
		Stability:          hazplume.ParseStability(c.Stability),
		AmbientTemperature: c.AmbientTemperature,
		ReleaseTemperature: c.ReleaseTemperature,
		Source:             geom.Point{X: c.Longitude, Y: c.Latitude},
		Chemical:           c.Chemical,
		StackDiameter:      c.StackDiameter,
		ExitVelocity:       c.ExitVelocity,
		Humidity:           c.Humidity,
		Pressure:           c.Pressure,
	}, nil
}

// ScenarioFromConfig reads the Scenario.* variables in cfg.
func ScenarioFromConfig(cfg *viper.Viper) (*hazplume.Scenario, error) {
	c := ScenarioConfig{
		Name:               "command line",
		Chemical:           os.ExpandEnv(cfg.GetString("Scenario.Chemical")),
		EmissionRate:       cfg.GetFloat64("Scenario.EmissionRate"),
		EmissionUnits:      os.ExpandEnv(cfg.GetString("Scenario.EmissionUnits")),
		ReleaseHeight:      cfg.GetFloat64("Scenario.ReleaseHeight"),
		WindSpeed:          cfg.GetFloat64("Scenario.WindSpeed"),
		WindDirection:      cfg.GetFloat64("Scenario.WindDirection"),
		Stability:          cfg.GetString("Scenario.Stability"),
		AmbientTemperature: cfg.GetFloat64("Scenario.AmbientTemperature"),
		ReleaseTemperature: cfg.GetFloat64("Scenario.ReleaseTemperature"),
		Longitude:          cfg.GetFloat64("Scenario.Longitude"),
		Latitude:           cfg.GetFloat64("Scenario.Latitude"),
		StackDiameter:      cfg.GetFloat64("Scenario.StackDiameter"),
		ExitVelocity:       cfg.GetFloat64("Scenario.ExitVelocity"),
		Humidity:           cfg.GetFloat64("Scenario.Humidity"),
		Pressure:           cfg.GetFloat64("Scenario.Pressure"),
	}
	return c.Scenario()
}

// ModelFromConfig creates a model using the chemical table and the
// Model.* variables in cfg.
func ModelFromConfig(cfg *viper.Viper, log logrus.FieldLogger) (*hazplume.Model, error) {
	chems, err := loadChemicals(os.ExpandEnv(cfg.GetString("ChemicalTable")))
	if err != nil {
		return nil, err
	}
	m := hazplume.NewModel(chems)
	m.Log = log
	// Unset or non-positive values keep the defaults.
	for name, v := range map[string]*float64{
		"Model.MinWindSpeed":     &m.MinWindSpeed,
		"Model.GridMax":          &m.GridMax,
		"Model.SearchUpperBound": &m.SearchUpperBound,
		"Model.SearchTolerance":  &m.SearchTolerance,
	} {
		if f := cfg.GetFloat64(name); f > 0 {
			*v = f
		}
	}
	// The threshold search starts at the distance of maximum
	// concentration, which can be as far as GridMax.
	if !(m.SearchUpperBound > m.GridMax) {
		return nil, fmt.Errorf("hazplumeutil: Model.SearchUpperBound (%g) must be greater than Model.GridMax (%g)",
			m.SearchUpperBound, m.GridMax)
	}
	return m, nil
}

// loadChemicals returns the built-in chemical table, merged with the
// records in the TOML file at path if path is not empty.
func loadChemicals(path string) (*chemical.Table, error) {
	t := chemical.Default()
	if path == "" {
		return t, nil
	}
	extra, err := chemical.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hazplumeutil: loading ChemicalTable: %v", err)
	}
	return t.Merge(extra), nil
}

// batchFile is the format of a batch scenario file.
type batchFile struct {
	Scenario []ScenarioConfig `toml:"scenario"`
}

// LoadBatch reads the scenarios in the TOML batch file at path.
func LoadBatch(path string) ([]ScenarioConfig, error) {
	var b batchFile
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return nil, fmt.Errorf("hazplumeutil: reading batch file: %v", err)
	}
	if len(b.Scenario) == 0 {
		return nil, fmt.Errorf("hazplumeutil: batch file %s has no [[scenario]] entries", path)
	}
	for i := range b.Scenario {
		if b.Scenario[i].Name == "" {
			b.Scenario[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return b.Scenario, nil
}

// checkOutputFile makes sure that the output file is specified, that its
// directory exists, and that it has a supported extension, and expands any
// environment variables.
func checkOutputFile(f string, extensions ...string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`hazplumeutil: you need to specify an output file (for example: OutputFile="zones.geojson")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("hazplumeutil: the output file directory doesn't exist: %v", err)
	}
	if len(extensions) == 0 {
		return f, nil
	}
	ext := strings.ToLower(filepath.Ext(f))
	for _, e := range extensions {
		if ext == e {
			return f, nil
		}
	}
	return f, fmt.Errorf("hazplumeutil: output file %s must have one of the extensions %v", f, extensions)
}

// setLogLevel sets the level of log from a level name.
func setLogLevel(log *logrus.Logger, level string) error {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("hazplumeutil: invalid LogLevel: %v", err)
	}
	log.SetLevel(l)
	return nil
}
