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

package chemical

// builtin holds 60-minute AEGL values and NIOSH IDLH values [ppm].
// AEGL-1 is not established for phosgene and carbon monoxide.
var builtin = []Record{
	{Name: "ammonia", Aliases: []string{"NH3"}, MolecularWeight: 17.03, AEGL3: 1100, AEGL2: 160, AEGL1: 30, IDLH: 300},
	{Name: "chlorine", Aliases: []string{"Cl2"}, MolecularWeight: 70.90, AEGL3: 20, AEGL2: 2.0, AEGL1: 0.50, IDLH: 10},
	{Name: "hydrogen sulfide", Aliases: []string{"H2S"}, MolecularWeight: 34.08, AEGL3: 50, AEGL2: 27, AEGL1: 0.51, IDLH: 100},
	{Name: "sulfur dioxide", Aliases: []string{"SO2"}, MolecularWeight: 64.07, AEGL3: 30, AEGL2: 0.75, AEGL1: 0.20, IDLH: 100},
	{Name: "hydrogen chloride", Aliases: []string{"HCl"}, MolecularWeight: 36.46, AEGL3: 100, AEGL2: 22, AEGL1: 1.8, IDLH: 50},
	{Name: "hydrogen fluoride", Aliases: []string{"HF"}, MolecularWeight: 20.01, AEGL3: 44, AEGL2: 24, AEGL1: 1.0, IDLH: 30},
	{Name: "hydrogen cyanide", Aliases: []string{"HCN"}, MolecularWeight: 27.03, AEGL3: 15, AEGL2: 7.1, AEGL1: 2.0, IDLH: 50},
	{Name: "phosgene", Aliases: []string{"COCl2"}, MolecularWeight: 98.92, AEGL3: 0.75, AEGL2: 0.30, IDLH: 2},
	{Name: "carbon monoxide", Aliases: []string{"CO"}, MolecularWeight: 28.01, AEGL3: 330, AEGL2: 83, IDLH: 1200},
	{Name: "nitrogen dioxide", Aliases: []string{"NO2"}, MolecularWeight: 46.01, AEGL3: 20, AEGL2: 12, AEGL1: 0.50, IDLH: 13},
	{Name: "benzene", Aliases: []string{"C6H6"}, MolecularWeight: 78.11, AEGL3: 4000, AEGL2: 800, AEGL1: 52, IDLH: 500},
	{Name: "methanol", Aliases: []string{"CH3OH"}, MolecularWeight: 32.04, AEGL3: 7200, AEGL2: 2100, AEGL1: 530, IDLH: 6000},
}

// Default returns a table of common industrial chemicals.
func Default() *Table {
	return NewTable(builtin...)
}
