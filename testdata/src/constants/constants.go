package constants

const (
	Zeta  = "z"
	Alpha = "a" // want `Expected "Alpha" to come before "Zeta"\.`
)

const (
	Total = Base + 1 // want `Expected dependency "Base" to come before "Total"\.`
	Base  = 1
)

const (
	Second = iota
	First
)

const (
	d = 4
	c = 3 // want `Expected "c" to come before "d"\.`

	b = 2
	a = 1 // want `Expected "a" to come before "b"\.`
)

const (
	y = 2 //sortful:disable-line
	x = 1
)

const (
	h = 8 //nolint:sortful
	g = 7
	f = 6 // want `Expected "f" to come before "g"\.`
)
