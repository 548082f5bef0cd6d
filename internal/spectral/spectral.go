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

package spectral

import (
	"errors"
	"fmt"
)

// The ordered wavelengths in nanometers at which the spectral axis is sampled
type Stencil []float64

// A named spectral band of a color filter array
type Band string

const (
	Red   Band = "red"
	Green Band = "green"
	Blue  Band = "blue"
	Pan   Band = "pan"
)

var (
	ErrUnknownBand   = errors.New("unknown spectral band")
	ErrUnknownSource = errors.New("unknown response source")
)

// A source of filter response curves. Response returns the sensitivity of the
// given band sampled at the stencil wavelengths; the result has length
// len(stencil) and is deterministic for fixed (stencil, band).
type Provider interface {
	Response(stencil Stencil, band Band) ([]float64, error)
}

// Resolves a response source identifier into a provider.
// Recognized sources are "dirac" and "WV34bands"
func Source(name string) (Provider, error) {
	switch name {
	case "dirac":
		return Dirac{}, nil
	case "WV34bands":
		return &wv34Table, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSource, name)
}

// Synthetic indicator responses. Each named band is the indicator function of
// its wavelength range over the stencil: blue below 500nm, green in [500,600)nm,
// red at 600nm and above, pan everywhere. On the canonical three-sample RGB
// stencil (450,550,650)nm these are exactly one-hot.
type Dirac struct{}

// The canonical three-sample stencil on which dirac responses are one-hot
func RGBStencil() Stencil { return Stencil{450, 550, 650} }

func (Dirac) Response(stencil Stencil, band Band) ([]float64, error) {
	res:=make([]float64, len(stencil))
	for i,lambda:=range stencil {
		var hit bool
		switch band {
		case Blue:
			hit=lambda<500
		case Green:
			hit=lambda>=500 && lambda<600
		case Red:
			hit=lambda>=600
		case Pan:
			hit=true
		default:
			return nil, fmt.Errorf("%w %q for source dirac", ErrUnknownBand, band)
		}
		if hit { res[i]=1 }
	}
	return res, nil
}
