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
	"sort"
	"strings"
	"testing"
)

func TestCatalogNames(t *testing.T) {
	want:=[]string{
		"bayer_GRBG", "bayer_RGGB", "chakrabarti", "gindele", "hamilton",
		"honda", "kaizu", "kodak", "lukac", "luo", "quad_bayer", "sony",
		"sparse_3", "wang", "xtrans", "yamagami", "yamanaka",
	}
	got:=Names()
	if !sort.StringsAreSorted(got) { t.Errorf("Names() not sorted: %v", got) }
	if len(got)!=len(want) { t.Fatalf("len(Names())=%d; want %d", len(got), len(want)) }
	for i:=range want {
		if got[i]!=want[i] { t.Errorf("Names()[%d]=%s; want %s", i, got[i], want[i]) }
	}
}

func TestLookupKnown(t *testing.T) {
	spec, err:=Lookup("bayer_RGGB")
	if err!=nil { t.Fatalf("Lookup(bayer_RGGB)=%v; want nil", err) }
	if spec.Name!="bayer_RGGB" { t.Errorf("spec.Name=%s; want bayer_RGGB", spec.Name) }
	if spec.Default!="green" { t.Errorf("spec.Default=%s; want green", spec.Default) }
	if len(spec.Assignments)!=2 { t.Errorf("len(Assignments)=%d; want 2", len(spec.Assignments)) }
}

func TestLookupUnknown(t *testing.T) {
	_, err:=Lookup("not_a_cfa")
	if err==nil { t.Fatalf("Lookup(not_a_cfa)=nil; want error") }
	if !strings.Contains(err.Error(), "not_a_cfa") { t.Errorf("error %q does not name the pattern", err.Error()) }
}

func TestSpecsWellFormed(t *testing.T) {
	for _,name:=range Names() {
		spec,_:=Lookup(name)
		if spec.Default=="" { t.Errorf("%s: empty default band", name) }
		for i,a:=range spec.Assignments {
			if a.RowPeriod<1 || a.ColPeriod<1 { t.Errorf("%s assignment %d: period (%d,%d) below 1", name, i, a.RowPeriod, a.ColPeriod) }
			if a.RowOff<0 || a.ColOff<0 { t.Errorf("%s assignment %d: negative offset (%d,%d)", name, i, a.RowOff, a.ColOff) }
			if a.RowOff>=a.RowPeriod || a.ColOff>=a.ColPeriod { t.Errorf("%s assignment %d: offset (%d,%d) outside period (%d,%d)", name, i, a.RowOff, a.ColOff, a.RowPeriod, a.ColPeriod) }
			if a.Band=="" { t.Errorf("%s assignment %d: empty band", name, i) }
		}
	}
}

// Within one tile, no two assignments of a Spec may claim the same cell,
// except where a later one deliberately overwrites. The catalog contains no
// overwrites between assignments, only over the default background
func TestSpecsNoOverlap(t *testing.T) {
	for _,name:=range Names() {
		spec,_:=Lookup(name)
		taken:=map[[2]int32]int{}
		for i,a:=range spec.Assignments {
			// mark all cells of the assignment inside the pattern's full period
			for r:=a.RowOff; r<lcmPeriod(spec, true); r+=a.RowPeriod {
				for c:=a.ColOff; c<lcmPeriod(spec, false); c+=a.ColPeriod {
					key:=[2]int32{r, c}
					if prev, ok:=taken[key]; ok {
						t.Errorf("%s: assignments %d and %d both claim cell (%d,%d)", name, prev, i, r, c)
					}
					taken[key]=i
				}
			}
		}
	}
}

func lcmPeriod(spec Spec, rows bool) int32 {
	lcm:=int32(1)
	for _,a:=range spec.Assignments {
		p:=a.RowPeriod
		if !rows { p=a.ColPeriod }
		lcm=lcm/gcd(lcm, p)*p
	}
	return lcm
}

func gcd(a, b int32) int32 {
	for b!=0 { a, b = b, a%b }
	return a
}

func TestBandsFirstUseOrder(t *testing.T) {
	spec,_:=Lookup("gindele")
	bands:=spec.Bands()
	want:=[]string{"green", "red", "blue", "pan"}
	if len(bands)!=len(want) { t.Fatalf("len(Bands())=%d; want %d", len(bands), len(want)) }
	for i:=range want {
		if string(bands[i])!=want[i] { t.Errorf("Bands()[%d]=%s; want %s", i, bands[i], want[i]) }
	}
}
