// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Smootherstep - квинтика t³(t(6t−15)+10): нулевые первая и вторая
// производные на концах, колесо разгоняется и плавно тормозит.
func Smootherstep(t float64) float64 {
	return t * t * t * (t*(6*t-15) + 10)
}

// Clamp01 ограничивает t отрезком [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ModDeg - остаток от деления угла со знаком делимого (как % для float).
// -1890 даёт -90, -2160 даёт -0.
func ModDeg(angle, m float64) float64 {
	return math.Mod(angle, m)
}
