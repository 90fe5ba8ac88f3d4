package markup

import "image/color"

// DecodeColor decodes six characters as RRGGBB. Each channel is read the
// way strtoul reads base 16: leading blanks and a sign are accepted, then
// the longest run of hex digits. A channel with no digits is 0. The boolean
// is false when any character is not a hex digit.
func DecodeColor(hex string) (color.NRGBA, bool) {
	c := color.NRGBA{A: 0xff}
	ok := len(hex) == 6
	if !ok {
		return c, false
	}
	for i := range 3 {
		pair := hex[2*i : 2*i+2]
		v, clean := decodeByte(pair)
		if !clean {
			ok = false
		}
		switch i {
		case 0:
			c.R = v
		case 1:
			c.G = v
		case 2:
			c.B = v
		}
	}
	return c, ok
}

// decodeByte parses one channel, truncating the value to a byte.
func decodeByte(s string) (uint8, bool) {
	clean := isHex(s[0]) && isHex(s[1])

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v uint
	for ; i < len(s) && isHex(s[i]); i++ {
		v = v<<4 | uint(hexVal(s[i]))
	}
	if neg {
		v = -v
	}
	return uint8(v), clean
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isHex(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
