// Package latin1 transcodes ISO 8859-1 input for a UTF-8 matcher and maps
// byte offsets between the two encodings.
package latin1

import (
	"fmt"
	"sort"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts Latin-1 bytes to UTF-8.
func Decode(s string) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("latin1: decode: %w", err)
	}
	return out, nil
}

// Text is a Latin-1 subject decoded to UTF-8, with an offset map back to
// the original bytes.
type Text struct {
	UTF8 string
	// starts[i] is the UTF-8 offset of Latin-1 byte i; starts[len] is len(UTF8).
	starts []int
}

// NewText decodes s and records where every Latin-1 byte landed.
func NewText(s string) (*Text, error) {
	utf8, err := Decode(s)
	if err != nil {
		return nil, err
	}
	starts := make([]int, len(s)+1)
	off := 0
	for i := 0; i < len(s); i++ {
		starts[i] = off
		if s[i] < 0x80 {
			off++
		} else {
			off += 2
		}
	}
	starts[len(s)] = off
	if off != len(utf8) {
		return nil, fmt.Errorf("latin1: decoded length %d, expected %d", len(utf8), off)
	}
	return &Text{UTF8: utf8, starts: starts}, nil
}

// ToUTF8 maps a Latin-1 byte offset to the decoded text.
func (t *Text) ToUTF8(off int) int {
	return t.starts[off]
}

// ToLatin1 maps a UTF-8 offset that falls on a character boundary back to the
// Latin-1 byte offset. Offsets inside a character round down.
func (t *Text) ToLatin1(off int) int {
	i := sort.SearchInts(t.starts, off)
	if i < len(t.starts) && t.starts[i] == off {
		return i
	}
	return i - 1
}
