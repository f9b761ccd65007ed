package utils

// Collide 判断两个矩形是否重叠，边界相接也算重叠
func Collide(ax0, ay0, ax1, ay1, bx0, by0, bx1, by1 int) bool {
	return !(ax1 < bx0 || ay1 < by0 || ax0 > bx1 || ay0 > by1)
}

// Contains 判断点是否落在矩形内
func Contains(ax0, ay0, ax1, ay1, x, y int) bool {
	return Collide(ax0, ay0, ax1, ay1, x, y, x, y)
}
