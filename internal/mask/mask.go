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

package mask

import (
	"github.com/spectralcam/mosaic/internal/cube"
	"github.com/spectralcam/mosaic/internal/pattern"
	"github.com/spectralcam/mosaic/internal/spectral"
)

// A built CFA mask: a dense (H,W,C) tensor where every pixel's spectral vector
// is the filter response of exactly one band. BandAt records which band won
// each pixel, as an index into Bands/Responses; this is the layout view a
// pattern visualization shows.
type Mask struct {
	*cube.Cube

	Bands     []spectral.Band
	Responses [][]float64
	BandAt    []uint8
}

// Builds the mask for a tiling rule over an HxW grid. The default band's
// response is broadcast to every pixel first; each assignment is then applied
// in declaration order as a strided overwrite truncated at the grid bounds,
// so partial tiles at the bottom and right edges are handled like any others.
// Each response is resolved exactly once. The result is a pure function of
// (spec, h, w, stencil, provider).
func Build(spec pattern.Spec, h, w int32, stencil spectral.Stencil, provider spectral.Provider) (*Mask, error) {
	bands:=spec.Bands()
	responses:=make([][]float64, len(bands))
	bandIdx:=map[spectral.Band]uint8{}
	for i,band:=range bands {
		res, err:=provider.Response(stencil, band)
		if err!=nil { return nil, err }
		responses[i]=res
		bandIdx[band]=uint8(i)
	}

	c:=int32(len(stencil))
	m:=&Mask{
		Cube     : cube.NewCube(h, w, c, nil),
		Bands    : bands,
		Responses: responses,
		BandAt   : make([]uint8, int(h)*int(w)),
	}

	// broadcast the default band
	def:=responses[0]
	for i:=int32(0); i<h; i++ {
		for j:=int32(0); j<w; j++ {
			copy(m.Vector(i,j), def)
		}
	}

	// punch in the strided assignments, later ones overwriting earlier ones
	for _,a:=range spec.Assignments {
		res:=responses[bandIdx[a.Band]]
		idx:=bandIdx[a.Band]
		for i:=a.RowOff; i<h; i+=a.RowPeriod {
			for j:=a.ColOff; j<w; j+=a.ColPeriod {
				copy(m.Vector(i,j), res)
				m.BandAt[int(j)+int(w)*int(i)]=idx
			}
		}
	}
	return m, nil
}

// Returns the index into Bands of the band covering pixel (i,j)
func (m *Mask) BandIndexAt(i, j int32) uint8 {
	return m.BandAt[int(j)+int(m.Width)*int(i)]
}
