package controller

// the size of the line buffer. must be a power of two
const lineBufferSize = 64

// LineBuffer remembers the characters typed on the current line so they can
// be erased. Only the most recent 64 characters are remembered but the length
// continues to count beyond that.
type LineBuffer struct {
	data [lineBufferSize]uint8
	n    int
}

// Push adds a character to the end of the line.
func (b *LineBuffer) Push(c uint8) {
	b.data[b.n&(lineBufferSize-1)] = c
	b.n++
}

// Pop removes the last character from the line. The boolean result is false
// if the line is empty.
func (b *LineBuffer) Pop() (uint8, bool) {
	if b.n == 0 {
		return 0, false
	}
	b.n--
	return b.data[b.n&(lineBufferSize-1)], true
}

// Len returns the number of characters on the line.
func (b *LineBuffer) Len() int {
	return b.n
}

// Clear empties the line.
func (b *LineBuffer) Clear() {
	b.n = 0
}
