package interference

import "math"

// Far-field slit patterns, returned as relative intensities normalized
// to the central peak over a screen centered on the slit axis.

// CalculateYoungsDoubleSlitPattern returns the two-slit interference
// intensity I/I0 = cos^2(pi*d*y / (lambda*L)) at numPoints evenly
// spaced screen positions y in [-screenWidth/2, screenWidth/2], using
// the small-angle path difference d*y/L. Non-positive geometry or point
// counts yield an empty pattern.
func (c *Calculator) CalculateYoungsDoubleSlitPattern(wavelength, slitSeparation, screenDistance, screenWidth float64, numPoints int) []float64 {
	if wavelength <= 0 || slitSeparation <= 0 || screenDistance <= 0 || screenWidth <= 0 || numPoints <= 0 {
		return []float64{}
	}

	dy := 0.0
	if numPoints > 1 {
		dy = screenWidth / float64(numPoints-1)
	}

	pattern := make([]float64, numPoints)
	for i := range pattern {
		y := -screenWidth/2.0 + float64(i)*dy

		pathDiff := slitSeparation * y / screenDistance
		amplitude := math.Cos(math.Pi * pathDiff / wavelength)

		pattern[i] = amplitude * amplitude
	}

	return pattern
}

// CalculateSingleSlitDiffraction returns the single-slit diffraction
// intensity I/I0 = (sin(beta)/beta)^2 with beta = pi*a*y / (lambda*L)
// over the same screen layout, taking the central limit 1 at beta = 0.
// Non-positive geometry or point counts yield an empty pattern.
func (c *Calculator) CalculateSingleSlitDiffraction(wavelength, slitWidth, screenDistance, screenWidth float64, numPoints int) []float64 {
	if wavelength <= 0 || slitWidth <= 0 || screenDistance <= 0 || screenWidth <= 0 || numPoints <= 0 {
		return []float64{}
	}

	dy := 0.0
	if numPoints > 1 {
		dy = screenWidth / float64(numPoints-1)
	}

	pattern := make([]float64, numPoints)
	for i := range pattern {
		y := -screenWidth/2.0 + float64(i)*dy
		beta := math.Pi * slitWidth * y / (wavelength * screenDistance)

		intensity := 1.0
		if beta != 0 {
			ratio := math.Sin(beta) / beta
			intensity = ratio * ratio
		}

		pattern[i] = intensity
	}

	return pattern
}
