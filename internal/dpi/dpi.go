// Package dpi converts logical layout pixels to device pixels.
package dpi

import "math"

// Base is the DPI at which one logical pixel is one device pixel.
const Base = 96

// Scale returns round(v * dpi / Base). Non-positive dpi is treated as Base.
func Scale(v, dpi int) int {
	if dpi <= 0 {
		dpi = Base
	}
	n := v * dpi
	if n >= 0 {
		return (n + Base/2) / Base
	}
	return -((-n + Base/2) / Base)
}

// FromFactor turns a device scale factor (1.0, 1.25, 2.0...) into a DPI.
func FromFactor(f float64) int {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Base
	}
	return int(math.Round(f * Base))
}
