package shape

// Line builds the path through data in order using the cardinal curve.
func Line[T any](data []T, curve Cardinal, x, y func(T) float64) *Path {
	p := &Path{}
	if len(data) == 0 {
		return p
	}
	c := curve.begin(p)
	c.lineStart()
	for _, d := range data {
		c.pointAt(x(d), y(d))
	}
	c.lineEnd()
	return p
}

// Area builds a closed band: the top edge runs forward through (x, y1), the
// baseline runs backwards through (x, y0).
func Area[T any](data []T, curve Cardinal, x, y0, y1 func(T) float64) *Path {
	p := &Path{}
	if len(data) == 0 {
		return p
	}
	c := curve.begin(p)
	c.areaStart()
	c.lineStart()
	for _, d := range data {
		c.pointAt(x(d), y1(d))
	}
	c.lineEnd()
	c.lineStart()
	for i := len(data) - 1; i >= 0; i-- {
		c.pointAt(x(data[i]), y0(data[i]))
	}
	c.lineEnd()
	c.areaEnd()
	return p
}
