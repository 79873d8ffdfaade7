package imaging

import (
	"github.com/h2non/bimg"
)

// DefaultTarget is the side length of the square canvas every normalized
// product image ends up on.
const DefaultTarget = 150

type (
	// Normalizer turns an arbitrary photo region into the fixed-size square
	// PNG stored next to a product row.
	Normalizer interface {
		Crop(buf []byte, xmin, ymin, xmax, ymax float64) ([]byte, error)
		Square(buf []byte) ([]byte, error)
	}

	normalizer struct {
		target int
	}
)

func NewNormalizer(target int) Normalizer {
	if target <= 0 {
		target = DefaultTarget
	}
	return &normalizer{target: target}
}

// Crop extracts the rectangle spanned by the bounding box. The caller
// guarantees xmin<xmax and ymin<ymax; coordinates outside the source bounds
// are left to libvips.
func (n *normalizer) Crop(buf []byte, xmin, ymin, xmax, ymax float64) ([]byte, error) {
	left := int(xmin)
	top := int(ymin)
	width := int(xmax) - left
	height := int(ymax) - top

	return bimg.NewImage(buf).Extract(top, left, width, height)
}

// Square scales the image uniformly so its longer side becomes exactly the
// target length, then centers it on an opaque white target-square canvas.
// Centering offsets are integer divisions, so an odd leftover leaves a
// one-pixel asymmetry. Output is always PNG.
func (n *normalizer) Square(buf []byte) ([]byte, error) {
	return bimg.NewImage(buf).Process(bimg.Options{
		Width:   n.target,
		Height:  n.target,
		Embed:   true,
		Extend:  bimg.ExtendWhite,
		Enlarge: true,
		Type:    bimg.PNG,
	})
}
