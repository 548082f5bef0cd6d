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

package render

import (
	"image"
	"image/png"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/spectralcam/mosaic/internal/mask"
	"github.com/spectralcam/mosaic/internal/spectral"
)

var canonical=map[spectral.Band]colorful.Color{
	spectral.Red  : {R: 0.84, G: 0.12, B: 0.12},
	spectral.Green: {R: 0.10, G: 0.66, B: 0.16},
	spectral.Blue : {R: 0.13, G: 0.23, B: 0.83},
	spectral.Pan  : {R: 0.92, G: 0.92, B: 0.92},
}

// Returns a display color for the i-th of n bands. The four canonical bands
// get fixed colors; anything else gets an evenly spaced Hcl palette entry
func BandColor(band spectral.Band, i, n int) colorful.Color {
	if col, ok:=canonical[band]; ok { return col }
	hue:=360.0*float64(i)/float64(n)
	return colorful.Hcl(hue, 0.5, 0.6).Clamped()
}

// Renders the per-pixel band layout of a mask, one pixel per CFA cell,
// upscaled by the given integer factor with nearest-neighbor sampling so
// individual cells stay crisp
func Pattern(m *mask.Mask, scale int) *image.RGBA {
	if scale<1 { scale=1 }
	h, w:=int(m.Height), int(m.Width)
	n:=len(m.Bands)
	img:=image.NewRGBA(image.Rect(0, 0, w, h))
	for i:=0; i<h; i++ {
		for j:=0; j<w; j++ {
			idx:=int(m.BandIndexAt(int32(i), int32(j)))
			r, g, b:=BandColor(m.Bands[idx], idx, n).RGB255()
			o:=img.PixOffset(j, i)
			img.Pix[o+0], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]=r, g, b, 0xff
		}
	}
	if scale==1 { return img }
	dst:=image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Encodes an image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
