package history

import "strings"

// RenderAltitude draws an altitude-vs-time chart into a text grid of the
// given size. Samples are downsampled to one column each; altitude is scaled
// so the highest recorded point sits on the top row and the surface on the
// bottom row. Returns one string per row, top first.
func RenderAltitude(samples []Sample, width, height int) []string {
	if width < 1 || height < 1 {
		return nil
	}

	rows := make([][]rune, height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(" ", width))
	}

	if len(samples) > 0 {
		maxAlt := 0.0
		for _, s := range samples {
			if s.Altitude > maxAlt {
				maxAlt = s.Altitude
			}
		}
		if maxAlt <= 0 {
			maxAlt = 1
		}

		for x := 0; x < width; x++ {
			s := samples[sampleIndex(len(samples), width, x)]
			alt := s.Altitude
			if alt < 0 {
				alt = 0
			}
			// Row 0 is the top of the chart.
			y := height - 1 - int(alt/maxAlt*float64(height-1)+0.5)
			if y < 0 {
				y = 0
			}
			if y > height-1 {
				y = height - 1
			}
			rows[y][x] = '·'
		}
	}

	out := make([]string, height)
	for y := range rows {
		out[y] = string(rows[y])
	}
	return out
}

// sampleIndex maps a chart column to a sample index, spreading n samples
// evenly across the width.
func sampleIndex(n, width, x int) int {
	if width <= 1 {
		return n - 1
	}
	i := x * (n - 1) / (width - 1)
	if i > n-1 {
		i = n - 1
	}
	return i
}

// MaxSpeed returns the highest recorded total speed, or 0 with no samples.
func MaxSpeed(samples []Sample) float64 {
	max := 0.0
	for _, s := range samples {
		if s.Speed > max {
			max = s.Speed
		}
	}
	return max
}
