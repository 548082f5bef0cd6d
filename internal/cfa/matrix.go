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
	"github.com/james-bowman/sparse"
)

// Returns the operator as an H*W x H*W*C sparse matrix in CSR form, for use
// with generic linear algebra solvers. The flattening convention matches
// Cube.Flatten and Plane.Flatten: input index k + C*j + C*W*i, output index
// j + W*i. Output row p holds exactly C nonzeros at columns p*C..p*C+C-1 with
// values mask[p/W, p%W, :]. Since the mask tensor is stored with the channel
// axis fastest, the CSR value array is simply a copy of the mask's backing
// slice. Applying the matrix to a flattened cube reproduces Direct; applying
// its transpose to a flattened plane reproduces Adjoint.
func (op *Operator) Matrix() *sparse.CSR {
	c:=int(op.c)
	nRows:=int(op.h)*int(op.w)
	nCols:=nRows*c

	ia:=make([]int, nRows+1)
	for p:=0; p<=nRows; p++ {
		ia[p]=p*c
	}
	ja:=make([]int, nCols)
	for n:=0; n<nCols; n++ {
		ja[n]=n
	}
	data:=append([]float64(nil), op.mask.Data...)

	return sparse.NewCSR(nRows, nCols, ia, ja, data)
}
