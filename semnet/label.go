package semnet

// labelAllocator hands out cell-scoped node labels in the sequence
// a, b, ..., z, aa, ab, ... Each Next is strictly after the largest label
// seen so far, so labels never collide within one cell.
type labelAllocator struct {
	max int // ordinal of the largest label observed; 0 when none
}

// observe records an existing label. Labels outside the sequence are ignored.
func (a *labelAllocator) observe(label string) {
	if n := labelOrdinal(label); n > a.max {
		a.max = n
	}
}

// next returns the label after the current maximum and reserves it.
func (a *labelAllocator) next() string {
	a.max++
	return ordinalLabel(a.max)
}

// labelOrdinal maps "a"→1, "z"→26, "aa"→27; 0 for anything else.
func labelOrdinal(label string) int {
	if label == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'a' || c > 'z' {
			return 0
		}
		n = n*26 + int(c-'a'+1)
	}
	return n
}

// ordinalLabel is the inverse of labelOrdinal for n ≥ 1.
func ordinalLabel(n int) string {
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('a' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}
