package vtparse

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// scanASCIIText consumes a maximal run of printable ASCII (0x20-0x7E) from
// data, capped at maxCells bytes/cells (one byte is always one cell in this
// variant). It never looks past a byte that would otherwise drive a state
// transition.
func scanASCIIText(data []byte, maxCells int) (cellCount, byteCount int) {
	n := 0
	for n < len(data) && n < maxCells {
		b := data[n]
		if b < 0x20 || b > 0x7E {
			break
		}
		n++
	}
	return n, n
}

// scanUnicodeText consumes a maximal prefix of data that decodes as
// well-formed, text-class UTF-8 (no C0/C1 controls, no DEL, no incomplete
// trailing sequence), measuring display width grapheme-cluster by
// grapheme-cluster with uniseg. Width is capped at maxCells; byteCount is
// however many bytes were needed to produce that many cells.
func scanUnicodeText(data []byte, maxCells int) (cellCount, byteCount int) {
	safe := textRunLen(data)
	if safe == 0 {
		return 0, 0
	}
	segment := data[:safe]

	cells, pos := 0, 0
	state := -1
	for pos < len(segment) {
		cluster, _, width, newState := uniseg.FirstGraphemeCluster(segment[pos:], state)
		if len(cluster) == 0 {
			break
		}
		if r, size := utf8.DecodeRune(cluster); size == len(cluster) {
			width = runewidth.RuneWidth(r)
		}
		if cells+width > maxCells {
			break
		}
		state = newState
		cells += width
		pos += len(cluster)
	}
	return cells, pos
}

// textRunLen returns the length of the longest prefix of data that is
// printable UTF-8 text: no control bytes, no DEL, every multibyte sequence
// complete and valid. It stops (without error) at the first byte that
// would need per-byte dispatch instead, matching the lenient malformed-UTF-8
// policy in the error handling design.
func textRunLen(data []byte) int {
	n := 0
	for n < len(data) {
		b := data[n]
		if b < 0x20 || b == 0x7F {
			break
		}
		if b < 0x80 {
			n++
			continue
		}
		if !utf8.FullRune(data[n:]) {
			break
		}
		r, size := utf8.DecodeRune(data[n:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if r >= 0x80 && r <= 0x9F {
			break
		}
		n += size
	}
	return n
}
