// File: distances.go
// Role: Distances, the vertex → shortest-distance map produced by the solvers.

package core

import (
	"fmt"
	"math"
	"strings"
)

// Inf returns the distance sentinel for vertices with no known finite path
// from the source: positive infinity.
func Inf() float64 {
	return math.Inf(1)
}

// Distances maps every vertex ID (the slice index) to its distance from
// the source. Unreachable vertices hold Inf().
type Distances []float64

// NewDistances returns a Distances of length n with every entry set to Inf()
// except source, which is 0. The caller guarantees source is in range.
func NewDistances(n, source int) Distances {
	inf := Inf()
	d := make(Distances, n)
	for v := range d {
		d[v] = inf
	}
	d[source] = 0

	return d
}

// IsReachable reports whether v has a finite distance.
func (d Distances) IsReachable(v int) bool {
	return v >= 0 && v < len(d) && !math.IsInf(d[v], 1)
}

// Equal reports whether d and other hold exactly the same distances.
func (d Distances) Equal(other Distances) bool {
	if len(d) != len(other) {
		return false
	}
	for v := range d {
		if d[v] != other[v] {
			return false
		}
	}

	return true
}

// String renders the map as {0: 0, 1: 1, 2: inf}.
func (d Distances) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for v, dist := range d {
		if v > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %s", v, FormatDistance(dist))
	}
	sb.WriteByte('}')

	return sb.String()
}

// FormatDistance renders a single distance, using "inf" for the sentinel.
func FormatDistance(dist float64) string {
	if math.IsInf(dist, 1) {
		return "inf"
	}

	return fmt.Sprintf("%g", dist)
}
