package compare

import (
	"cmp"
)

// alphabet compares strings by the position of their characters in a user-given sequence.
// Characters absent from the alphabet go after all listed ones, ordered by code point.
type alphabet struct {
	index map[rune]int
}

func newAlphabet(chars string, n *normalizer) alphabet {
	a := alphabet{index: map[rune]int{}}
	i := 0
	for _, r := range chars {
		r = n.foldRune(r)
		if _, ok := a.index[r]; ok {
			continue
		}

		a.index[r] = i
		i++
	}

	return a
}

func (a alphabet) compare(x, y string) int {
	rx, ry := []rune(x), []rune(y)
	for i := 0; i < len(rx) && i < len(ry); i++ {
		if rx[i] == ry[i] {
			continue
		}

		ix, okx := a.index[rx[i]]
		iy, oky := a.index[ry[i]]
		switch {
		case okx && oky:
			return cmp.Compare(ix, iy)
		case okx:
			return -1
		case oky:
			return 1
		default:
			return cmp.Compare(rx[i], ry[i])
		}
	}

	return len(rx) - len(ry)
}
