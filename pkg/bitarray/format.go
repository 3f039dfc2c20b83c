package bitarray

import (
	"fmt"
	"strings"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Format renders the logical bits as an unsigned number, most significant
// bit (BitLen-1) first. %b, %v and %s print binary, %o octal, %x and %X
// hex. Every digit position is printed, leading zeros included, so the
// width depends only on BitLen. The # flag adds a 0b, 0o or 0x prefix.
// An explicit width pads like integer verbs do: spaces on the left, spaces
// on the right with -, or zeros between prefix and digits with 0.
func (b *BitArray[S, H]) Format(f fmt.State, verb rune) {
	var (
		digitBits int
		prefix    string
		alphabet  = lowerDigits
	)
	switch verb {
	case 'b', 'v', 's':
		digitBits, prefix = 1, "0b"
	case 'o':
		digitBits, prefix = 3, "0o"
	case 'x':
		digitBits, prefix = 4, "0x"
	case 'X':
		digitBits, prefix, alphabet = 4, "0X", upperDigits
	default:
		fmt.Fprintf(f, "%%!%c(bitarray=%s)", verb, b.digits(1, lowerDigits))
		return
	}

	if !f.Flag('#') {
		prefix = ""
	}
	digits := b.digits(digitBits, alphabet)

	pad := 0
	if w, ok := f.Width(); ok {
		pad = max(w-len(prefix)-len(digits), 0)
	}
	switch {
	case f.Flag('-'):
		_, _ = f.Write([]byte(prefix + digits + strings.Repeat(" ", pad)))
	case f.Flag('0'):
		_, _ = f.Write([]byte(prefix + strings.Repeat("0", pad) + digits))
	default:
		_, _ = f.Write([]byte(strings.Repeat(" ", pad) + prefix + digits))
	}
}

// String returns the binary rendering.
func (b *BitArray[S, H]) String() string {
	return b.digits(1, lowerDigits)
}

// digits groups the logical bits into digitBits-wide digits. The top digit
// only covers the bits below BitLen.
func (b *BitArray[S, H]) digits(digitBits int, alphabet string) string {
	n := (b.bitLen + digitBits - 1) / digitBits
	var sb strings.Builder
	sb.Grow(n)
	for d := n - 1; d >= 0; d-- {
		v := 0
		for j := digitBits - 1; j >= 0; j-- {
			i := d*digitBits + j
			if i < b.bitLen && b.GetBitUnchecked(i) {
				v |= 1 << j
			}
		}
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}
