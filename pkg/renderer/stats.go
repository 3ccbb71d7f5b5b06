package renderer

import "time"

// BandStats describes the work done for one horizontal band
type BandStats struct {
	Band     int           // Band index, top to bottom
	Rows     int           // Number of raster rows in the band
	Pixels   int           // Number of primary rays cast
	Duration time.Duration // Wall time spent on the band
}

// FrameStats aggregates the statistics for one rendered frame
type FrameStats struct {
	Width   int
	Height  int
	Workers int
	Bands   []BandStats
	Elapsed time.Duration
}

// TotalPixels returns the number of primary rays cast for the frame
func (fs FrameStats) TotalPixels() int {
	total := 0
	for _, b := range fs.Bands {
		total += b.Pixels
	}
	return total
}

// SlowestBand returns the band that took the longest, or a zero value for
// an empty frame.
func (fs FrameStats) SlowestBand() BandStats {
	var slowest BandStats
	for _, b := range fs.Bands {
		if b.Duration > slowest.Duration {
			slowest = b
		}
	}
	return slowest
}
