package utils

// FloorDiv 向下取整的除法，Go 的 / 是向零取整，-1/2 为 0，这里为 -1
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod 结果的符号与除数相同，-3 mod 16 为 13
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
