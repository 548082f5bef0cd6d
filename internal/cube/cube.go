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

package cube

import (
	"errors"
	"fmt"
)

// A dense spectral data cube of shape (height, width, channels).
// Data is stored row-major with the spectral axis varying fastest,
// i.e. element (i,j,k) lives at index k + channels*j + channels*width*i.
type Cube struct {
	Height   int32
	Width    int32
	Channels int32

	Data []float64
}

// A dense single-channel image plane of shape (height, width).
// Element (i,j) lives at index j + width*i.
type Plane struct {
	Height int32
	Width  int32

	Data []float64
}

// Creates a cube of the given shape. Data is not copied, allocated if nil.
func NewCube(height, width, channels int32, data []float64) *Cube {
	numElems:=int(height)*int(width)*int(channels)
	if data==nil {
		data=make([]float64, numElems)
	} else if len(data)!=numElems {
		panic(fmt.Sprintf("cube data has %d elements; shape (%d,%d,%d) needs %d",
			len(data), height, width, channels, numElems))
	}
	return &Cube{
		Height  : height,
		Width   : width,
		Channels: channels,
		Data    : data,
	}
}

// Creates a plane of the given shape. Data is not copied, allocated if nil.
func NewPlane(height, width int32, data []float64) *Plane {
	numElems:=int(height)*int(width)
	if data==nil {
		data=make([]float64, numElems)
	} else if len(data)!=numElems {
		panic(fmt.Sprintf("plane data has %d elements; shape (%d,%d) needs %d",
			len(data), height, width, numElems))
	}
	return &Plane{
		Height: height,
		Width : width,
		Data  : data,
	}
}

// Returns the flat index of element (i,j,k)
func (c *Cube) Index(i, j, k int32) int {
	return int(k) + int(c.Channels)*(int(j) + int(c.Width)*int(i))
}

func (c *Cube) At(i, j, k int32) float64     { return c.Data[c.Index(i,j,k)] }
func (c *Cube) Set(i, j, k int32, v float64) { c.Data[c.Index(i,j,k)]=v }

// Returns the (i,j) spectral vector as a subslice of the backing data
func (c *Cube) Vector(i, j int32) []float64 {
	base:=c.Index(i,j,0)
	return c.Data[base : base+int(c.Channels)]
}

// Returns the flat index of element (i,j)
func (p *Plane) Index(i, j int32) int {
	return int(j) + int(p.Width)*int(i)
}

func (p *Plane) At(i, j int32) float64     { return p.Data[p.Index(i,j)] }
func (p *Plane) Set(i, j int32, v float64) { p.Data[p.Index(i,j)]=v }

// Returns the cube contents flattened per the fixed layout.
// This is the backing slice itself, not a copy.
func (c *Cube) Flatten() []float64 { return c.Data }

// Returns the plane contents flattened per the fixed layout.
// This is the backing slice itself, not a copy.
func (p *Plane) Flatten() []float64 { return p.Data }

// Verifies that the cube has the given shape
func (c *Cube) CheckShape(height, width, channels int32) error {
	if c.Height!=height || c.Width!=width || c.Channels!=channels {
		return errors.New(fmt.Sprintf("cube has shape (%d,%d,%d); want (%d,%d,%d)",
			c.Height, c.Width, c.Channels, height, width, channels))
	}
	return nil
}

// Verifies that the plane has the given shape
func (p *Plane) CheckShape(height, width int32) error {
	if p.Height!=height || p.Width!=width {
		return errors.New(fmt.Sprintf("plane has shape (%d,%d); want (%d,%d)",
			p.Height, p.Width, height, width))
	}
	return nil
}
