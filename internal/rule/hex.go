package rule

import (
	"fmt"
	"strconv"
)

// HexLength is the exact length of the wire encoding: 3 hex chars for orbit
// bits 128-139, then 16 for bits 64-127, then 16 for bits 0-63, high to low.
const HexLength = 35

// hexGroups lists (first orbit bit, bit width, hex width) high to low.
var hexGroups = [3]struct{ base, bits, chars int }{
	{128, 12, 3},
	{64, 64, 16},
	{0, 64, 16},
}

// Hex encodes the compact rule as a fixed 35-character lowercase hex string.
func (c C4Ruleset) Hex() string {
	out := make([]byte, 0, HexLength)
	for _, g := range hexGroups {
		var v uint64
		for j := 0; j < g.bits; j++ {
			if c[g.base+j] != 0 {
				v |= 1 << uint(j)
			}
		}
		out = append(out, fmt.Sprintf("%0*x", g.chars, v)...)
	}
	return string(out)
}

// FromHex decodes a 35-character lowercase hex string into a compact rule.
// Any other length or a non-hex digit is a hard error; the input is never
// truncated or padded.
func FromHex(s string) (C4Ruleset, error) {
	var c4 C4Ruleset
	if len(s) != HexLength {
		return c4, fmt.Errorf("ruleset hex must be %d characters, got %d", HexLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return c4, fmt.Errorf("ruleset hex contains invalid character %q at position %d", ch, i)
		}
	}

	pos := 0
	for _, g := range hexGroups {
		v, err := strconv.ParseUint(s[pos:pos+g.chars], 16, 64)
		if err != nil {
			return c4, fmt.Errorf("parse ruleset hex: %w", err)
		}
		pos += g.chars
		for j := 0; j < g.bits; j++ {
			c4[g.base+j] = uint8(v >> uint(j) & 1)
		}
	}
	return c4, nil
}
