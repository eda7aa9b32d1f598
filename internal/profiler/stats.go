package profiler

import (
	"math"
	"sort"
)

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func round2(v float64) float64 { return round(v, 2) }
func round3(v float64) float64 { return round(v, 3) }

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the n-1 standard deviation. Returns 0 for fewer than two
// values.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// quantile computes the q-quantile (0..1) with linear interpolation over a
// sorted copy of values.
func quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// centralMoment computes the k-th central moment of values.
func centralMoment(values []float64, k int) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += math.Pow(v-m, float64(k))
	}
	return sum / float64(len(values))
}

// skewness computes the adjusted Fisher-Pearson standardized moment
// coefficient. Returns (0, false) when fewer than three values exist or
// the column has no variance.
func skewness(values []float64) (float64, bool) {
	n := float64(len(values))
	if n < 3 {
		return 0, false
	}
	m2 := centralMoment(values, 2)
	if m2 == 0 {
		return 0, false
	}
	m3 := centralMoment(values, 3)
	g1 := m3 / math.Pow(m2, 1.5)
	adjusted := g1 * math.Sqrt(n*(n-1)) / (n - 2)
	return adjusted, true
}

// kurtosis computes the adjusted excess kurtosis. Returns (0, false) when
// fewer than four values exist or the column has no variance.
func kurtosis(values []float64) (float64, bool) {
	n := float64(len(values))
	if n < 4 {
		return 0, false
	}
	m2 := centralMoment(values, 2)
	if m2 == 0 {
		return 0, false
	}
	m4 := centralMoment(values, 4)
	g2 := m4/(m2*m2) - 3
	adjusted := ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
	return adjusted, true
}

// pearson computes the Pearson correlation over paired samples where both
// sides are present (NaN entries excluded pairwise). Returns (0, false)
// when fewer than two complete pairs exist or either side has no variance.
func pearson(a, b []float64) (float64, bool) {
	var xs, ys []float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	if len(xs) < 2 {
		return 0, false
	}
	mx, my := mean(xs), mean(ys)
	var cov, vx, vy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0, false
	}
	return cov / math.Sqrt(vx*vy), true
}
