package domain

import (
	"fmt"
	"strings"
)

// Axis identifies one of the six capability axes shared by vehicle stats and
// incident requirements.
type Axis int

const (
	AxisFire Axis = iota
	AxisTechnical
	AxisHeight
	AxisHazmat
	AxisRescue
	AxisCoordination
)

// NumAxes is the number of capability axes.
const NumAxes = 6

// Axes lists every axis in canonical order, for generic iteration.
var Axes = [NumAxes]Axis{
	AxisFire,
	AxisTechnical,
	AxisHeight,
	AxisHazmat,
	AxisRescue,
	AxisCoordination,
}

var axisNames = [NumAxes]string{
	"fire",
	"technical",
	"height",
	"hazmat",
	"rescue",
	"coordination",
}

func (a Axis) String() string {
	if a < 0 || a >= NumAxes {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// StatVector holds one integer value per axis. The zero value is all zeros.
// It is used both for vehicle capabilities and incident requirements.
type StatVector [NumAxes]int

// Get returns the value for the given axis.
func (v StatVector) Get(a Axis) int {
	return v[a]
}

// Add accumulates other into v elementwise.
func (v *StatVector) Add(other StatVector) {
	for _, a := range Axes {
		v[a] += other[a]
	}
}

// Sum returns the total across all axes.
func (v StatVector) Sum() int {
	total := 0
	for _, a := range Axes {
		total += v[a]
	}
	return total
}

// Meets reports whether v satisfies every positive axis of req. Axes with a
// zero or negative requirement are unconstrained; the check is >= on each
// constrained axis.
func (v StatVector) Meets(req StatVector) bool {
	for _, a := range Axes {
		if req[a] > 0 && v[a] < req[a] {
			return false
		}
	}
	return true
}

// String renders the non-zero axes as "fire=3 height=1". All-zero vectors
// render as "none".
func (v StatVector) String() string {
	parts := make([]string, 0, NumAxes)
	for _, a := range Axes {
		if v[a] != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", a, v[a]))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
