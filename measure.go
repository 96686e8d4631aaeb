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

package hazplume

// Measurer measures the duration of model operations. Measure is called
// at the start of an operation and the returned function is called when
// the operation finishes.
type Measurer interface {
	Measure(op string) (done func())
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(op string) func()

// Measure implements Measurer.
func (f MeasurerFunc) Measure(op string) func() { return f(op) }

func (m *Model) measure(op string) func() {
	if m.Measurer == nil {
		return func() {}
	}
	return m.Measurer.Measure(op)
}
