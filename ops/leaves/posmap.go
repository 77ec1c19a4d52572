package leaves

import (
	"strings"
	"unicode"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

// pos_map reduces each character to a class letter (U upper-case letter,
// L lower-case letter, D digit, S anything else), for keyboard-walk/PIN-shape analysis
// (original_source/operations/pos_map.py).
func init() {
	ops.RegisterLeaf("pos_map", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("pos_map", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(func(s string) string {
			var b strings.Builder
			b.Grow(len(s))
			for _, r := range s {
				switch {
				case unicode.IsUpper(r):
					b.WriteByte('U')
				case unicode.IsLower(r):
					b.WriteByte('L')
				case unicode.IsDigit(r):
					b.WriteByte('D')
				default:
					b.WriteByte('S')
				}
			}
			return b.String()
		}), ops.Transformer, nil
	})

	// dehex decodes "0x.."-style hex-escaped byte runs back to their raw
	// characters when the whole entry decodes cleanly; otherwise the
	// entry is unchanged and the result is N/A.
	ops.RegisterLeaf("dehex", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("dehex", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(dehex), ops.Transformer, nil
	})
}

func dehex(s string) string {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return s
	}
	hexDigits := s[2:]
	if len(hexDigits) == 0 || len(hexDigits)%2 != 0 {
		return s
	}
	out := make([]byte, len(hexDigits)/2)
	for i := range out {
		hi, ok1 := hexVal(hexDigits[2*i])
		lo, ok2 := hexVal(hexDigits[2*i+1])
		if !ok1 || !ok2 {
			return s
		}
		out[i] = byte(hi<<4 | lo)
	}
	return string(out)
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
