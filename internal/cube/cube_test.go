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
	"testing"
)

func TestCubeLayout(t *testing.T) {
	h, w, c:=int32(3), int32(4), int32(2)
	cb:=NewCube(h, w, c, nil)
	if len(cb.Data)!=int(h)*int(w)*int(c) { t.Fatalf("len(Data)=%d; want %d", len(cb.Data), h*w*c) }

	// channel axis varies fastest, then columns, then rows
	n:=0
	for i:=int32(0); i<h; i++ {
		for j:=int32(0); j<w; j++ {
			for k:=int32(0); k<c; k++ {
				if idx:=cb.Index(i,j,k); idx!=n { t.Errorf("Index(%d,%d,%d)=%d; want %d", i, j, k, idx, n) }
				n++
			}
		}
	}

	cb.Set(2,3,1, 42)
	if cb.Data[len(cb.Data)-1]!=42 { t.Errorf("last element=%f; want 42", cb.Data[len(cb.Data)-1]) }
	if cb.At(2,3,1)!=42 { t.Errorf("At(2,3,1)=%f; want 42", cb.At(2,3,1)) }
}

func TestCubeVector(t *testing.T) {
	cb:=NewCube(2, 2, 3, nil)
	v:=cb.Vector(1, 0)
	if len(v)!=3 { t.Fatalf("len(Vector)=%d; want 3", len(v)) }
	v[2]=7
	if cb.At(1,0,2)!=7 { t.Errorf("At(1,0,2)=%f; want 7 (vector must alias backing data)", cb.At(1,0,2)) }
}

func TestPlaneLayout(t *testing.T) {
	p:=NewPlane(3, 5, nil)
	n:=0
	for i:=int32(0); i<3; i++ {
		for j:=int32(0); j<5; j++ {
			if idx:=p.Index(i,j); idx!=n { t.Errorf("Index(%d,%d)=%d; want %d", i, j, idx, n) }
			n++
		}
	}
}

func TestCheckShape(t *testing.T) {
	cb:=NewCube(4, 5, 3, nil)
	if err:=cb.CheckShape(4, 5, 3); err!=nil { t.Errorf("CheckShape(4,5,3)=%v; want nil", err) }
	if err:=cb.CheckShape(5, 4, 3); err==nil { t.Errorf("CheckShape(5,4,3)=nil; want error") }

	p:=NewPlane(4, 5, nil)
	if err:=p.CheckShape(4, 5); err!=nil { t.Errorf("CheckShape(4,5)=%v; want nil", err) }
	if err:=p.CheckShape(4, 6); err==nil { t.Errorf("CheckShape(4,6)=nil; want error") }
}
