// This file is part of Meru.
//
// Meru is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Meru is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Meru.  If not, see <https://www.gnu.org/licenses/>.

package thumbnailer

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Quality of the scaling algorithm.
type Quality int

// List of valid Quality values. Fast is suitable for thumbnails that are
// created every few frames. Best is more suitable for thumbnails that are
// created once.
const (
	Fast Quality = iota
	Best
)

func (q Quality) String() string {
	switch q {
	case Fast:
		return "fast"
	case Best:
		return "best"
	}
	return "unknown"
}

func (q Quality) interpolator() xdraw.Interpolator {
	if q == Best {
		return xdraw.CatmullRom
	}
	return xdraw.ApproxBiLinear
}

// Thumbnailer creates thumbnail images from frame buffers.
type Thumbnailer struct {
	// maximum dimensions of the thumbnail
	width  int
	height int

	quality Quality
}

// NewThumbnailer is the preferred method of initialisation for the
// Thumbnailer type. Thumbnails will fit inside the width and height while
// keeping the aspect ratio of the source image.
func NewThumbnailer(width int, height int, quality Quality) (*Thumbnailer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("thumbnailer: illegal dimensions (%dx%d)", width, height)
	}
	return &Thumbnailer{
		width:   width,
		height:  height,
		quality: quality,
	}, nil
}

func (thmb *Thumbnailer) String() string {
	return fmt.Sprintf("%dx%d (%s)", thmb.width, thmb.height, thmb.quality)
}

// Bounds returns the size of the thumbnail that would be created for a source
// image of the specified size.
func (thmb *Thumbnailer) Bounds(src image.Rectangle) image.Rectangle {
	w := src.Dx()
	h := src.Dy()
	if w == 0 || h == 0 {
		return image.Rectangle{}
	}

	// a source image that fits inside the thumbnail is not scaled up
	if w <= thmb.width && h <= thmb.height {
		return image.Rect(0, 0, w, h)
	}

	// scale to fit the width and then check if the height still fits
	tw := thmb.width
	th := h * thmb.width / w
	if th > thmb.height {
		th = thmb.height
		tw = w * thmb.height / h
	}

	return image.Rect(0, 0, max(tw, 1), max(th, 1))
}

// Create a new thumbnail from the source image. The returned image is never
// the same as the source image and so is safe to keep after the source has
// changed.
//
// Returns nil if the source image is nil or empty.
func (thmb *Thumbnailer) Create(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}

	b := thmb.Bounds(src.Bounds())
	if b.Empty() {
		return nil
	}

	img := image.NewRGBA(b)

	// copy without scaling if the dimensions are the same
	if b.Dx() == src.Bounds().Dx() && b.Dy() == src.Bounds().Dy() {
		draw.Draw(img, b, src, src.Bounds().Min, draw.Src)
		return img
	}

	thmb.quality.interpolator().Scale(img, b, src, src.Bounds(), xdraw.Src, nil)
	return img
}
