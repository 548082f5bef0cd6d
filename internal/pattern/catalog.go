// Copyright (C) 2023 The mosaic authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pattern

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spectralcam/mosaic/internal/spectral"
)

const (
	red   = spectral.Red
	green = spectral.Green
	blue  = spectral.Blue
	pan   = spectral.Pan
)

func at(rowOff, colOff, rowPeriod, colPeriod int32, band spectral.Band) Assignment {
	return Assignment{RowOff: rowOff, ColOff: colOff, RowPeriod: rowPeriod, ColPeriod: colPeriod, Band: band}
}

// The fixed catalog of known CFA tiling rules. Periods and offsets follow the
// published layouts; RGGB/GRBG refer to the top-left 2x2 cell reading order.
var catalog=map[string]Spec{
	"bayer_GRBG": {Default: green, Assignments: []Assignment{
		at(0,1, 2,2, red),
		at(1,0, 2,2, blue),
	}},

	"bayer_RGGB": {Default: green, Assignments: []Assignment{
		at(0,0, 2,2, red),
		at(1,1, 2,2, blue),
	}},

	"quad_bayer": {Default: green, Assignments: []Assignment{
		at(0,2, 4,4, red),  at(0,3, 4,4, red),
		at(1,2, 4,4, red),  at(1,3, 4,4, red),
		at(2,0, 4,4, blue), at(2,1, 4,4, blue),
		at(3,0, 4,4, blue), at(3,1, 4,4, blue),
	}},

	// one RGB quad per 8x8 tile over a panchromatic background
	"sparse_3": {Default: pan, Assignments: []Assignment{
		at(0,0, 8,8, red),
		at(0,4, 8,8, green), at(4,0, 8,8, green),
		at(4,4, 8,8, blue),
	}},

	"kodak": {Default: pan, Assignments: []Assignment{
		at(3,2, 4,4, red),   at(2,3, 4,4, red),
		at(3,0, 4,4, green), at(2,1, 4,4, green), at(1,2, 4,4, green), at(0,3, 4,4, green),
		at(1,0, 4,4, blue),  at(0,1, 4,4, blue),
	}},

	"sony": {Default: pan, Assignments: []Assignment{
		at(2,3, 4,4, red),   at(0,1, 4,4, red),
		at(3,0, 4,4, green), at(2,1, 4,4, green), at(1,2, 4,4, green), at(0,3, 4,4, green),
		at(3,2, 4,4, blue),  at(1,0, 4,4, blue),
	}},

	// a single Bayer cell per 6x6 tile, rest panchromatic
	"chakrabarti": {Default: pan, Assignments: []Assignment{
		at(2,3, 6,6, red),
		at(2,2, 6,6, green), at(3,3, 6,6, green),
		at(3,2, 6,6, blue),
	}},

	"honda": {Default: pan, Assignments: []Assignment{
		at(1,3, 4,4, red),
		at(1,1, 4,4, green), at(3,3, 4,4, green),
		at(3,1, 4,4, blue),
	}},

	"kaizu": {Default: pan, Assignments: []Assignment{
		at(0,0, 6,6, red),   at(1,1, 6,6, red),   at(4,2, 6,6, red),
		at(5,3, 6,6, red),   at(2,4, 6,6, red),   at(3,5, 6,6, red),
		at(0,2, 6,6, green), at(1,3, 6,6, green), at(2,0, 6,6, green),
		at(3,1, 6,6, green), at(4,4, 6,6, green), at(5,5, 6,6, green),
		at(4,0, 6,6, blue),  at(5,1, 6,6, blue),  at(2,2, 6,6, blue),
		at(3,3, 6,6, blue),  at(0,4, 6,6, blue),  at(1,5, 6,6, blue),
	}},

	"yamagami": {Default: pan, Assignments: []Assignment{
		at(0,2, 4,4, red),   at(2,0, 4,4, red),
		at(1,1, 4,4, green), at(1,3, 4,4, green), at(3,1, 4,4, green), at(3,3, 4,4, green),
		at(0,0, 4,4, blue),  at(2,2, 4,4, blue),
	}},

	// Bayer with the second green replaced by panchromatic
	"gindele": {Default: green, Assignments: []Assignment{
		at(0,1, 2,2, red),
		at(1,0, 2,2, blue),
		at(1,1, 2,2, pan),
	}},

	// 8x8 repeating diagonal lattice, 4x4 blocks of diagonal color pairs
	"hamilton": {Default: pan, Assignments: []Assignment{
		at(0,0, 8,8, red),   at(1,1, 8,8, red),   at(2,2, 8,8, red),   at(3,3, 8,8, red),
		at(2,0, 8,8, red),   at(3,1, 8,8, red),   at(0,2, 8,8, red),   at(1,3, 8,8, red),
		at(0,4, 8,8, green), at(0,6, 8,8, green), at(1,5, 8,8, green), at(1,7, 8,8, green),
		at(2,4, 8,8, green), at(2,6, 8,8, green), at(3,5, 8,8, green), at(3,7, 8,8, green),
		at(4,0, 8,8, green), at(6,0, 8,8, green), at(5,1, 8,8, green), at(7,1, 8,8, green),
		at(4,2, 8,8, green), at(6,2, 8,8, green), at(5,3, 8,8, green), at(7,3, 8,8, green),
		at(4,4, 8,8, blue),  at(5,5, 8,8, blue),  at(6,6, 8,8, blue),  at(7,7, 8,8, blue),
		at(6,4, 8,8, blue),  at(7,5, 8,8, blue),  at(4,6, 8,8, blue),  at(5,7, 8,8, blue),
	}},

	"luo": {Default: pan, Assignments: []Assignment{
		at(1,0, 4,4, red),   at(1,2, 4,4, red),
		at(0,1, 4,4, green), at(2,1, 4,4, green),
		at(1,1, 4,4, blue),
	}},

	// 5x5 diagonal layout
	"wang": {Default: pan, Assignments: []Assignment{
		at(2,0, 5,5, red),   at(0,1, 5,5, red),   at(1,3, 5,5, red),
		at(3,2, 5,5, red),   at(4,4, 5,5, red),
		at(3,0, 5,5, green), at(1,1, 5,5, green), at(4,2, 5,5, green),
		at(2,3, 5,5, green), at(0,4, 5,5, green),
		at(4,0, 5,5, blue),  at(2,1, 5,5, blue),  at(0,2, 5,5, blue),
		at(3,3, 5,5, blue),  at(1,4, 5,5, blue),
	}},

	"yamanaka": {Default: green, Assignments: []Assignment{
		at(0,1, 2,4, red),  at(1,3, 2,4, red),
		at(1,1, 2,4, blue), at(0,3, 2,4, blue),
	}},

	"lukac": {Default: green, Assignments: []Assignment{
		at(0,1, 4,2, red),  at(2,0, 4,2, red),
		at(1,1, 4,2, blue), at(3,0, 4,2, blue),
	}},

	// Fujifilm 6x6 layout
	"xtrans": {Default: green, Assignments: []Assignment{
		at(0,4, 6,6, red),  at(1,0, 6,6, red),  at(1,2, 6,6, red),  at(2,4, 6,6, red),
		at(3,1, 6,6, red),  at(4,3, 6,6, red),  at(4,5, 6,6, red),  at(5,1, 6,6, red),
		at(0,1, 6,6, blue), at(1,3, 6,6, blue), at(1,5, 6,6, blue), at(2,1, 6,6, blue),
		at(3,4, 6,6, blue), at(4,0, 6,6, blue), at(4,2, 6,6, blue), at(5,4, 6,6, blue),
	}},
}

// Looks up the tiling rule for a pattern name.
// Fails for names outside the fixed catalog
func Lookup(name string) (Spec, error) {
	spec, ok:=catalog[name]
	if !ok {
		return Spec{}, errors.New(fmt.Sprintf("CFA pattern %q is not in the catalog of %d known patterns", name, len(catalog)))
	}
	spec.Name=name
	return spec, nil
}

// Returns all catalog pattern names in sorted order
func Names() []string {
	names:=make([]string, 0, len(catalog))
	for name:=range catalog {
		names=append(names, name)
	}
	sort.Strings(names)
	return names
}
