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

// Package chemical holds physical properties and exposure limits of
// hazardous chemicals.
package chemical

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Record holds the properties of a chemical. Exposure limits are
// mixing ratios in ppm; a zero limit means that no value has
// been established.
type Record struct {
	Name    string   `toml:"name"`
	Aliases []string `toml:"aliases"`

	// MolecularWeight is in g/mol.
	MolecularWeight float64 `toml:"molecular_weight"`

	// AEGL3, AEGL2, and AEGL1 are the 60-minute Acute Exposure Guideline
	// Levels for life-threatening effects, disabling effects, and
	// discomfort, respectively.
	AEGL3 float64 `toml:"aegl3"`
	AEGL2 float64 `toml:"aegl2"`
	AEGL1 float64 `toml:"aegl1"`

	// IDLH is the concentration immediately dangerous to life or health.
	IDLH float64 `toml:"idlh"`
}

// Tiers returns the exposure limits from most to least severe.
func (r Record) Tiers() [3]float64 {
	return [3]float64{r.AEGL3, r.AEGL2, r.AEGL1}
}

// Table is a set of chemical records keyed by case-insensitive name and
// alias. A Table must not be modified after it is shared.
type Table struct {
	records map[string]Record
	names   []string
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewTable creates a table holding records. Later records replace
// earlier records with the same name or alias.
func NewTable(records ...Record) *Table {
	t := &Table{records: make(map[string]Record)}
	for _, r := range records {
		t.add(r)
	}
	return t
}

func (t *Table) add(r Record) {
	k := key(r.Name)
	if _, ok := t.records[k]; !ok {
		t.names = append(t.names, r.Name)
	}
	t.records[k] = r
	for _, a := range r.Aliases {
		t.records[key(a)] = r
	}
}

// Lookup returns the record for the chemical with the given name or alias.
func (t *Table) Lookup(name string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	r, ok := t.records[key(name)]
	return r, ok
}

// Names returns the sorted primary names of the chemicals in t.
func (t *Table) Names() []string {
	o := make([]string, len(t.names))
	copy(o, t.names)
	sort.Strings(o)
	return o
}

// Len returns the number of chemicals in t.
func (t *Table) Len() int { return len(t.names) }

// Merge returns a new table with the records of t and o. Records in o
// replace records in t with the same name.
func (t *Table) Merge(o *Table) *Table {
	m := NewTable()
	for _, tt := range []*Table{t, o} {
		if tt == nil {
			continue
		}
		for _, n := range tt.names {
			m.add(tt.records[key(n)])
		}
	}
	return m
}

// Load reads a table from TOML in the format:
//
//	[[chemical]]
//	name = "chlorine"
//	aliases = ["Cl2"]
//	molecular_weight = 70.90
//	aegl3 = 20.0
//	aegl2 = 2.0
//	aegl1 = 0.5
//	idlh = 10.0
func Load(r io.Reader) (*Table, error) {
	var f struct {
		Chemical []Record `toml:"chemical"`
	}
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("chemical: decoding table: %v", err)
	}
	for i, rec := range f.Chemical {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("chemical: record %d has no name", i)
		}
		if !(rec.MolecularWeight > 0) {
			return nil, fmt.Errorf("chemical: %s: molecular_weight=%g but should be >0",
				rec.Name, rec.MolecularWeight)
		}
		for _, v := range []float64{rec.AEGL3, rec.AEGL2, rec.AEGL1, rec.IDLH} {
			if v < 0 {
				return nil, fmt.Errorf("chemical: %s: exposure limits must not be negative", rec.Name)
			}
		}
	}
	return NewTable(f.Chemical...), nil
}

// LoadFile reads a table from the TOML file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chemical: opening table: %v", err)
	}
	defer f.Close()
	return Load(f)
}
