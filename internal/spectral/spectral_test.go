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
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestDiracOneHotOnRGBStencil(t *testing.T) {
	st:=RGBStencil()
	cases:=[]struct{
		band Band
		want []float64
	}{
		{Blue,  []float64{1, 0, 0}},
		{Green, []float64{0, 1, 0}},
		{Red,   []float64{0, 0, 1}},
		{Pan,   []float64{1, 1, 1}},
	}
	for _,tc:=range cases {
		res, err:=Dirac{}.Response(st, tc.band)
		if err!=nil { t.Fatalf("Response(%s)=%v; want nil error", tc.band, err) }
		if !floats.Equal(res, tc.want) { t.Errorf("Response(%s)=%v; want %v", tc.band, res, tc.want) }
	}
}

func TestDiracUnknownBand(t *testing.T) {
	_, err:=Dirac{}.Response(RGBStencil(), "cyan")
	if !errors.Is(err, ErrUnknownBand) { t.Errorf("Response(cyan) err=%v; want ErrUnknownBand", err) }
}

func TestSourceLookup(t *testing.T) {
	if _, err:=Source("dirac"); err!=nil { t.Errorf("Source(dirac)=%v; want nil", err) }
	if _, err:=Source("WV34bands"); err!=nil { t.Errorf("Source(WV34bands)=%v; want nil", err) }
	_, err:=Source("nope")
	if !errors.Is(err, ErrUnknownSource) { t.Errorf("Source(nope) err=%v; want ErrUnknownSource", err) }
}

func TestTableResponse(t *testing.T) {
	provider, err:=Source("WV34bands")
	if err!=nil { t.Fatalf("Source(WV34bands)=%v; want nil", err) }

	st:=Stencil{425, 550, 675, 1100}
	res, err:=provider.Response(st, Green)
	if err!=nil { t.Fatalf("Response(green)=%v; want nil", err) }
	if len(res)!=len(st) { t.Fatalf("len(res)=%d; want %d", len(res), len(st)) }

	// 425nm is midway between the 400 and 450 grid points; the interpolator's
	// evaluation order differs from the midpoint formula in the last bit
	want:=0.5*(0.02+0.09)
	if !scalar.EqualWithinAbsOrRel(res[0], want, 1e-12, 1e-12) { t.Errorf("res[0]=%g; want %g", res[0], want) }
	// 550nm is a grid point
	if res[1]!=0.85 { t.Errorf("res[1]=%f; want 0.85", res[1]) }
	// beyond the grid the response extrapolates as a constant
	if res[3]!=0.0 { t.Errorf("res[3]=%f; want 0", res[3]) }

	// grid points of the red curve
	res, err=provider.Response(Stencil{650}, Red)
	if err!=nil { t.Fatalf("Response(red)=%v; want nil", err) }
	if res[0]!=0.88 { t.Errorf("red at 650nm=%f; want 0.88", res[0]) }
}

func TestTableUnknownBand(t *testing.T) {
	provider,_:=Source("WV34bands")
	_, err:=provider.Response(RGBStencil(), "nir")
	if !errors.Is(err, ErrUnknownBand) { t.Errorf("Response(nir) err=%v; want ErrUnknownBand", err) }
}

func TestResponseDeterminism(t *testing.T) {
	provider,_:=Source("WV34bands")
	st:=Stencil{410, 530, 640, 810}
	a,_:=provider.Response(st, Pan)
	b,_:=provider.Response(st, Pan)
	if !floats.Equal(a, b) { t.Errorf("repeated responses differ: %v vs %v", a, b) }
}
