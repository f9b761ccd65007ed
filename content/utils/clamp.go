package utils

func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
