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

package cfa

import (
	"errors"
	"fmt"

	"github.com/spectralcam/mosaic/internal/cube"
	"github.com/spectralcam/mosaic/internal/mask"
	"github.com/spectralcam/mosaic/internal/pattern"
	"github.com/spectralcam/mosaic/internal/spectral"
)

// A color filter array modeled as a linear operator. Direct maps a spectral
// cube (H,W,C) onto the single-channel raw mosaic capture (H,W); Adjoint is
// the exact transpose of Direct under the Euclidean inner product. The mask
// is built eagerly at construction and never mutated afterwards, so one
// operator instance may be used freely from multiple goroutines.
type Operator struct {
	Name    string
	Pattern string

	h, w, c int32
	mask    *mask.Mask
}

// Creates an operator for the named catalog pattern over input shape (h,w,c).
// Fails before building the mask if the pattern is not in the catalog, or if
// the stencil length disagrees with c. Lookup errors from the response
// provider are passed through unchanged
func New(patternName string, h, w, c int32, stencil spectral.Stencil, source string, name string) (*Operator, error) {
	spec, err:=pattern.Lookup(patternName)
	if err!=nil { return nil, err }
	if int32(len(stencil))!=c {
		return nil, errors.New(fmt.Sprintf("spectral stencil has %d samples; input shape needs %d channels", len(stencil), c))
	}
	provider, err:=spectral.Source(source)
	if err!=nil { return nil, err }
	m, err:=mask.Build(spec, h, w, stencil, provider)
	if err!=nil { return nil, err }
	if name=="" { name="CFA" }
	return &Operator{
		Name   : name,
		Pattern: patternName,
		h      : h,
		w      : w,
		c      : c,
		mask   : m,
	}, nil
}

// Returns the input shape (H,W,C)
func (op *Operator) InputShape() (h, w, c int32) { return op.h, op.w, op.c }

// Returns the output shape (H,W)
func (op *Operator) OutputShape() (h, w int32) { return op.h, op.w }

// Returns the mask the operator samples with
func (op *Operator) Mask() *mask.Mask { return op.mask }

// Computes the forward map: the raw mosaic capture of a spectral cube.
// y[i,j] is the inner product of the pixel's spectral vector with the
// pixel's mask vector
func (op *Operator) Direct(x *cube.Cube) (*cube.Plane, error) {
	if err:=x.CheckShape(op.h, op.w, op.c); err!=nil { return nil, err }
	y:=cube.NewPlane(op.h, op.w, nil)
	for i:=int32(0); i<op.h; i++ {
		for j:=int32(0); j<op.w; j++ {
			xv, mv:=x.Vector(i,j), op.mask.Vector(i,j)
			sum:=0.0
			for k:=range mv {
				sum+=xv[k]*mv[k]
			}
			y.Set(i,j, sum)
		}
	}
	return y, nil
}

// Computes the adjoint map: each mosaic scalar broadcast back across the
// spectral axis, weighted by the pixel's mask vector
func (op *Operator) Adjoint(y *cube.Plane) (*cube.Cube, error) {
	if err:=y.CheckShape(op.h, op.w); err!=nil { return nil, err }
	x:=cube.NewCube(op.h, op.w, op.c, nil)
	for i:=int32(0); i<op.h; i++ {
		for j:=int32(0); j<op.w; j++ {
			v:=y.At(i,j)
			xv, mv:=x.Vector(i,j), op.mask.Vector(i,j)
			for k:=range mv {
				xv[k]=mv[k]*v
			}
		}
	}
	return x, nil
}
