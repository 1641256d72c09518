package calculator

import "strconv"

var presets = []int{5, 10, 15, 25, 50}

// Presets returns the preset tip percentages in display order.
func Presets() []int {
	out := make([]int, len(presets))
	copy(out, presets)
	return out
}

// IsPreset reports whether percent is one of the presets.
func IsPreset(percent int) bool {
	for _, p := range presets {
		if p == percent {
			return true
		}
	}
	return false
}

// PresetText is the exact text a preset writes into the tip field.
func PresetText(percent int) string {
	return strconv.Itoa(percent)
}
