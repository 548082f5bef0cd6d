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
	"github.com/spectralcam/mosaic/internal/spectral"
)

// A strided tile assignment: band is placed at every pixel (r,c) with
// r = RowOff + m*RowPeriod and c = ColOff + n*ColPeriod inside the image.
type Assignment struct {
	RowOff    int32         `json:"rowOff"`
	ColOff    int32         `json:"colOff"`
	RowPeriod int32         `json:"rowPeriod"`
	ColPeriod int32         `json:"colPeriod"`
	Band      spectral.Band `json:"band"`
}

// A declarative CFA tiling rule: a default band covering the whole grid, and
// an ordered list of strided assignments punched in on top of it. Assignments
// are applied in declaration order; a later assignment overwrites any cell an
// earlier one touched.
type Spec struct {
	Name       string        `json:"name"`
	Default    spectral.Band `json:"default"`
	Assignments []Assignment `json:"assignments"`
}

// Bands returns the default band followed by each distinct assignment band,
// in first-use order.
func (s *Spec) Bands() []spectral.Band {
	bands:=[]spectral.Band{s.Default}
	seen:=map[spectral.Band]bool{s.Default: true}
	for _,a:=range s.Assignments {
		if !seen[a.Band] {
			bands=append(bands, a.Band)
			seen[a.Band]=true
		}
	}
	return bands
}
