package lbm

// D2Q9 velocity set. Ordering is {rest, E, N, W, S, NE, NW, SW, SE}; the
// opposite of direction i is Opposite[i].
var C = [9][2]int{
	{0, 0},
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

var W = [9]float64{
	4. / 9.,
	1. / 9., 1. / 9., 1. / 9., 1. / 9.,
	1. / 36., 1. / 36., 1. / 36., 1. / 36.,
}

var Opposite = [9]int{0, 3, 4, 1, 2, 7, 8, 5, 6}

// Cs2 is the lattice speed of sound squared.
const Cs2 = 1. / 3.
