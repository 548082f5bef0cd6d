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

package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spectralcam/mosaic/internal/cfa"
	"github.com/spectralcam/mosaic/internal/pattern"
	"github.com/spectralcam/mosaic/internal/render"
	"github.com/spectralcam/mosaic/internal/spectral"
)

func Serve() {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping",                        getPing)
			v1.GET("/patterns",                    getPatterns)
			v1.GET("/patterns/:name",              getPattern)
			v1.GET("/patterns/:name/preview.png",  getPatternPreview)
		}
	}
	r.Run() // listen and serve on 0.0.0.0:8080
}

func getPing(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

func getPatterns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patterns": pattern.Names()})
}

func getPattern(c *gin.Context) {
	spec, err:=pattern.Lookup(c.Param("name"))
	if err!=nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, spec)
}

func queryInt(c *gin.Context, key string, dflt int) int {
	s:=c.Query(key)
	if s=="" { return dflt }
	v, err:=strconv.Atoi(s)
	if err!=nil { return dflt }
	return v
}

// Renders the mask layout of a catalog pattern as PNG. Optional query
// parameters height, width (grid size, default 16x16), scale (integer
// upscaling, default 16) and source (response source, default dirac)
func getPatternPreview(c *gin.Context) {
	name:=c.Param("name")
	h:=int32(queryInt(c, "height", 16))
	w:=int32(queryInt(c, "width",  16))
	scale:=queryInt(c, "scale", 16)
	source:=c.Query("source")
	if source=="" { source="dirac" }

	stencil:=spectral.RGBStencil()
	op, err:=cfa.New(name, h, w, int32(len(stencil)), stencil, source, "")
	if err!=nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	img:=render.Pattern(op.Mask(), scale)
	c.Writer.Header().Set("Content-Type", "image/png")
	c.Writer.WriteHeader(http.StatusOK)
	if err:=render.WritePNG(c.Writer, img); err!=nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
