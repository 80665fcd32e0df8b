package element

import (
	"bytes"
)

// BlankLines counts whitespace-only lines lying entirely between offsets from and to.
func BlankLines(src []byte, from, to int) int {
	if from >= to {
		return 0
	}

	lines := bytes.Split(src[from:to], []byte("\n"))
	if len(lines) < 3 {
		return 0
	}

	var res int
	for _, l := range lines[1 : len(lines)-1] {
		if len(bytes.TrimSpace(l)) == 0 {
			res++
		}
	}

	return res
}
