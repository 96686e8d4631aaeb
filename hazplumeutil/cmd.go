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

// Package hazplumeutil contains the command-line interface, configuration,
// and output formats for the HazPlume model.
package hazplumeutil

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazplume"
	"github.com/spatialmodel/hazplume/footprint"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives the command-line program's log output.
var Log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	def := hazplume.DefaultConfig()

	scenarioSets := []*pflag.FlagSet{zonesCmd.Flags(), footprintCmd.Flags(), chartCmd.Flags()}
	modelSets := []*pflag.FlagSet{Root.PersistentFlags()}

	// Options are the configuration options available to HazPlume.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum level of log messages to print
              (debug, info, warning, or error).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "MetricsFile",
			usage: `
              MetricsFile specifies a file to write operation counts and
              timings to in the Prometheus text format. If it is empty,
              no metrics are recorded.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ChemicalTable",
			usage: `
              ChemicalTable specifies a TOML file of chemical exposure limits
              to add to or override the built-in table. Each record is a
              [[chemical]] table with name, aliases, molecular_weight, aegl1,
              aegl2, aegl3, and idlh fields. Limits are in ppm.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Scenario.Chemical",
			usage: `
              Scenario.Chemical is the name of the released chemical.`,
			shorthand:  "c",
			defaultVal: "chlorine",
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.EmissionRate",
			usage: `
              Scenario.EmissionRate is the release rate, in units of
              Scenario.EmissionUnits.`,
			shorthand:  "q",
			defaultVal: 1.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.EmissionUnits",
			usage: `
              Scenario.EmissionUnits gives the units of Scenario.EmissionRate.
              Options are ` + strings.Join(hazplume.EmissionUnits(), ", ") + `.`,
			defaultVal: "kg/s",
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.ReleaseHeight",
			usage: `
              Scenario.ReleaseHeight is the height of the release above
              the ground [m].`,
			defaultVal: 0.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.WindSpeed",
			usage: `
              Scenario.WindSpeed is the wind speed [m/s].`,
			shorthand:  "u",
			defaultVal: 3.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.WindDirection",
			usage: `
              Scenario.WindDirection is the direction the wind blows from,
              in degrees clockwise from north.`,
			defaultVal: 270.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.Stability",
			usage: `
              Scenario.Stability is the Pasquill-Gifford stability class,
              A (very unstable) through F (very stable).`,
			shorthand:  "s",
			defaultVal: "D",
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.AmbientTemperature",
			usage: `
              Scenario.AmbientTemperature is the air temperature [°C].`,
			defaultVal: 20.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.ReleaseTemperature",
			usage: `
              Scenario.ReleaseTemperature is the temperature of the released
              gas [°C]. Releases warmer than the air rise buoyantly.`,
			defaultVal: 20.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.Longitude",
			usage: `
              Scenario.Longitude is the longitude of the release [degrees].`,
			defaultVal: 0.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.Latitude",
			usage: `
              Scenario.Latitude is the latitude of the release [degrees].`,
			defaultVal: 0.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.StackDiameter",
			usage: `
              Scenario.StackDiameter is the diameter of the release opening [m].
              If it is zero, a default is used.`,
			defaultVal: 0.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.ExitVelocity",
			usage: `
              Scenario.ExitVelocity is the velocity of the released gas [m/s].
              If it is zero, a default is used.`,
			defaultVal: 0.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.Humidity",
			usage: `
              Scenario.Humidity is the relative humidity [%]. It is written to the
              wind feature of GeoJSON output but does not affect the results.`,
			defaultVal: 50.0,
			flagsets:   scenarioSets,
		},
		{
			name: "Scenario.Pressure",
			usage: `
              Scenario.Pressure is the air pressure [kPa]. It is written to the
              wind feature of GeoJSON output but does not affect the results.`,
			defaultVal: 101.325,
			flagsets:   scenarioSets,
		},
		{
			name: "Model.MinWindSpeed",
			usage: `
              Model.MinWindSpeed is the lowest wind speed used in
              calculations [m/s].`,
			defaultVal: def.MinWindSpeed,
			flagsets:   modelSets,
		},
		{
			name: "Model.GridMax",
			usage: `
              Model.GridMax is the farthest downwind distance searched for the
              maximum concentration [m].`,
			defaultVal: def.GridMax,
			flagsets:   modelSets,
		},
		{
			name: "Model.SearchUpperBound",
			usage: `
              Model.SearchUpperBound is the farthest downwind distance
              searched for hazard zone boundaries [m].`,
			defaultVal: def.SearchUpperBound,
			flagsets:   modelSets,
		},
		{
			name: "Model.SearchTolerance",
			usage: `
              Model.SearchTolerance is the precision of hazard zone
              boundaries [m].`,
			defaultVal: def.SearchTolerance,
			flagsets:   modelSets,
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to write hazard zone geometry to. Files
              ending in .geojson or .json are written as GeoJSON and files
              ending in .shp are written as shapefiles.`,
			shorthand:  "o",
			defaultVal: "hazplume.geojson",
			flagsets:   []*pflag.FlagSet{footprintCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "ChartFile",
			usage: `
              ChartFile is the path to write the concentration chart to.
              The format (png, svg, pdf, ...) is taken from the extension.`,
			defaultVal: "hazplume.png",
			flagsets:   []*pflag.FlagSet{chartCmd.Flags()},
		},
		{
			name: "BatchFile",
			usage: `
              BatchFile is a TOML file containing [[scenario]] tables to
              evaluate. Each table has the fields name, chemical,
              emission_rate, emission_units, release_height, wind_speed,
              wind_direction, stability, ambient_temperature,
              release_temperature, longitude, latitude, stack_diameter,
              exit_velocity, humidity, and pressure.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "Workers",
			usage: `
              Workers is the number of scenarios to evaluate at the same time.`,
			defaultVal: 4,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("HAZPLUME")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(chemicalsCmd)
	Root.AddCommand(zonesCmd)
	Root.AddCommand(footprintCmd)
	Root.AddCommand(chartCmd)
	Root.AddCommand(batchCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("hazplume: problem reading configuration file: %v", err)
		}
	}
	return setLogLevel(Log, Cfg.GetString("LogLevel"))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "hazplume",
	Short: "A Gaussian plume model for hazardous chemical releases.",
	Long: `HazPlume estimates how far toxic concentrations extend downwind of an
accidental chemical release. It calculates red, orange, and yellow hazard
zones from chemical exposure limits and writes them as map polygons.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'HAZPLUME_var' where 'var' is
the name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of HazPlume.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("HazPlume v%s\n", hazplume.Version)
	},
	DisableAutoGenTag: true,
}

var chemicalsCmd = &cobra.Command{
	Use:   "chemicals",
	Short: "List the known chemicals.",
	Long: `chemicals prints the chemicals in the chemical table and the red, orange,
and yellow concentration thresholds [mg/m³] used for each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := ModelFromConfig(Cfg, Log)
		if err != nil {
			return err
		}
		return writeChemicals(cmd.OutOrStdout(), m)
	},
	DisableAutoGenTag: true,
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Calculate hazard zone distances.",
	Long: `zones calculates the maximum ground-level concentration and the downwind
extent of the red, orange, and yellow hazard zones for a single release.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRun(func(p *footprint.Projector) error {
			s, err := ScenarioFromConfig(Cfg)
			if err != nil {
				return err
			}
			return WriteTable(cmd.OutOrStdout(), Evaluate(p, "command line", s))
		})
	},
	DisableAutoGenTag: true,
}

var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Write hazard zone polygons.",
	Long: `footprint calculates the hazard zones for a single release and writes
them, along with a wind arrow and the plume touchdown point, to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"), outputExtensions...)
		if err != nil {
			return err
		}
		return withRun(func(p *footprint.Projector) error {
			s, err := ScenarioFromConfig(Cfg)
			if err != nil {
				return err
			}
			r := Evaluate(p, "command line", s)
			if err := WriteTable(cmd.OutOrStdout(), r); err != nil {
				return err
			}
			Log.WithField("file", outputFile).Info("hazplume: writing footprints")
			return WriteOutput(outputFile, r)
		})
	},
	DisableAutoGenTag: true,
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Plot concentration against downwind distance.",
	Long: `chart plots the ground-level centerline concentration of a single release
against downwind distance, with the hazard zone thresholds, and saves the
plot to ChartFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chartFile, err := checkOutputFile(Cfg.GetString("ChartFile"))
		if err != nil {
			return err
		}
		return withRun(func(p *footprint.Projector) error {
			s, err := ScenarioFromConfig(Cfg)
			if err != nil {
				return err
			}
			Log.WithField("file", chartFile).Info("hazplume: writing chart")
			return SaveChart(p.Model, s, chartFile)
		})
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate the scenarios in a batch file.",
	Long: `batch evaluates every scenario in BatchFile in parallel, prints a summary
table, and writes the hazard zone polygons of all scenarios to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		batchFile := os.ExpandEnv(Cfg.GetString("BatchFile"))
		if batchFile == "" {
			return fmt.Errorf("hazplume: you need to specify a BatchFile")
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"), outputExtensions...)
		if err != nil {
			return err
		}
		workers, err := cast.ToIntE(Cfg.Get("Workers"))
		if err != nil {
			return fmt.Errorf("hazplume: invalid Workers: %v", err)
		}
		configs, err := LoadBatch(batchFile)
		if err != nil {
			return err
		}
		return withRun(func(p *footprint.Projector) error {
			b := NewBatch(p, workers, len(configs), Log)
			results, err := b.Evaluate(context.Background(), configs)
			if err != nil {
				return err
			}
			Log.WithFields(logrus.Fields{
				"scenarios": len(configs),
				"requests":  b.Requests(),
			}).Debug("hazplume: batch finished")
			if err := WriteTable(cmd.OutOrStdout(), results...); err != nil {
				return err
			}
			Log.WithField("file", outputFile).Info("hazplume: writing footprints")
			return WriteOutput(outputFile, results...)
		})
	},
	DisableAutoGenTag: true,
}

// withRun creates a model and projector from the configuration, runs f,
// and then writes metrics if a MetricsFile is configured.
func withRun(f func(p *footprint.Projector) error) (err error) {
	m, err := ModelFromConfig(Cfg, Log)
	if err != nil {
		return err
	}
	var metrics *Metrics
	if path := os.ExpandEnv(Cfg.GetString("MetricsFile")); path != "" {
		if _, err = checkOutputFile(path); err != nil {
			return err
		}
		metrics, err = NewMetrics(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		m.Measurer = metrics
		defer func() {
			if werr := metrics.WriteFile(path); werr != nil && err == nil {
				err = werr
			}
		}()
	}
	return f(footprint.NewProjector(m))
}
