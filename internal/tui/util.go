package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// overlay writes s into line starting at rune column col, padding as needed.
func overlay(line string, col int, s string) string {
	r := []rune(line)
	if col < 0 {
		col = 0
	}
	for len(r) < col+len([]rune(s)) {
		r = append(r, ' ')
	}
	copy(r[col:], []rune(s))
	return string(r)
}
