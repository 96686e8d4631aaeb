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
along with HazPlume.  If not, see <http://www.gnu.org/licenses/>.*/

// Package hash creates cache keys for model inputs.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/davecgh/go-spew/spew"
)

var printer = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Key returns a hash key for the combination of objects. Objects that
// implement fmt.Stringer contribute their string; others are gob-encoded,
// or printed with spew if they cannot be encoded (e.g., because they
// hold NaN values or interfaces).
func Key(objects ...interface{}) string {
	h := fnv.New128a()
	for _, o := range objects {
		write(h, o)
		h.Write([]byte{0})
	}
	b := h.Sum([]byte{})
	return fmt.Sprintf("%x", b[0:h.Size()])
}

func write(w io.Writer, object interface{}) {
	if s, ok := object.(fmt.Stringer); ok {
		io.WriteString(w, s.String())
		return
	}
	if b, err := encode(object); err == nil {
		w.Write(b)
		return
	}
	printer.Fprintf(w, "%#v", object)
}

func encode(object interface{}) ([]byte, error) {
	var buf writerBuffer
	if err := gob.NewEncoder(&buf).Encode(object); err != nil {
		return nil, err
	}
	return buf, nil
}

type writerBuffer []byte

func (b *writerBuffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}
