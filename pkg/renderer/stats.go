package renderer

import "time"

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	HitPixels      int           // Pixels whose primary ray hit a sphere
	ShadowedPixels int           // Hit pixels shaded with the shadow material
	Elapsed        time.Duration // Wall time of the whole frame
}

// Merge adds the pixel counts of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.ShadowedPixels += other.ShadowedPixels
}

// HitRatio returns the fraction of pixels that hit a sphere
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
