package fab

// Metrics converts between density-independent pixels (dp) and device
// pixels (px). Conversion happens when a value is configured, never per
// frame.
type Metrics struct {
	// Density is the number of device pixels per dp. Zero is treated as 1.
	Density float64
}

// DefaultMetrics is a 1:1 dp to px mapping.
var DefaultMetrics = Metrics{Density: 1}

func (m Metrics) scale() float64 {
	if m.Density <= 0 {
		return 1
	}
	return m.Density
}

// DpToPx converts dp to px.
func (m Metrics) DpToPx(dp float64) float64 {
	return dp * m.scale()
}

// PxToDp converts px to dp.
func (m Metrics) PxToDp(px float64) float64 {
	return px / m.scale()
}
