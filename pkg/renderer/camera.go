package renderer

import "github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/core"

// ImagePlane maps raster pixels onto the z = 0 plane. The raster spans
// [-1, 1) on both axes, with the integer half-size at the origin.
type ImagePlane struct {
	width, height int
}

// NewImagePlane creates an image plane for a raster
func NewImagePlane(width, height int) ImagePlane {
	return ImagePlane{width: width, height: height}
}

// PointAt returns the image plane point for pixel (x, y)
func (p ImagePlane) PointAt(x, y int) core.Point3 {
	xpos := float64(x-p.width/2) * 2.0 / float64(p.width)
	ypos := float64(y-p.height/2) * 2.0 / float64(p.height)
	return core.NewPoint3(xpos, ypos, 0)
}

// PrimaryRay returns the ray from camera through pixel (x, y)
func (p ImagePlane) PrimaryRay(camera core.Point3, x, y int) core.Ray {
	return core.NewRayThrough(camera, p.PointAt(x, y))
}
