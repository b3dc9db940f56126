package interp

// Linear2 blends x0 and x1: t = 0 gives x0, t = 1 gives x1.
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 is the Catmull-Rom cubic between x0 and x1, shaped by the outer
// neighbours xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	slope0 := (x1 - xm1) / 2
	slope1 := (x2 - x0) / 2
	d := x1 - x0

	a := slope0 + slope1 - 2*d
	b := 3*d - 2*slope0 - slope1

	return x0 + t*(slope0+t*(b+t*a))
}
