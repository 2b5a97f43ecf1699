package gainfx

import "strconv"

// ValueMap maps a normalized [0, 1] control position to a parameter value
// and formats it for display. Scaling is linear.
type ValueMap struct {
	Min, Max float32
	Decimals int
}

// DefaultValueMap is the mapping used for the amplitude: identity over
// [0, 1], two decimals.
var DefaultValueMap = ValueMap{Min: 0, Max: 1, Decimals: 2}

func (m ValueMap) NormalizedToValue(normalized float32) float32 {
	return m.Min + normalized*(m.Max-m.Min)
}

func (m ValueMap) ValueToNormalized(value float32) float32 {
	if m.Max == m.Min {
		return 0
	}
	return (value - m.Min) / (m.Max - m.Min)
}

// NormalizedToDisplay returns the value for the normalized position rounded
// to m.Decimals decimals, e.g. "0.50".
func (m ValueMap) NormalizedToDisplay(normalized float32) string {
	return strconv.FormatFloat(float64(m.NormalizedToValue(normalized)), 'f', m.Decimals, 32)
}
