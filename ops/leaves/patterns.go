package leaves

import (
	"regexp"
	"strings"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

// keyboardRows are adjacency chains a keyboard-walk password commonly
// slides along, on a QWERTY layout.
var keyboardRows = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm", "1234567890",
}

func init() {
	ops.RegisterLeaf("has", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("has", args, 1); err != nil {
			return nil, 0, err
		}
		substr, err := argString("has", args, 0)
		if err != nil {
			return nil, 0, err
		}
		return filter(func(s string) bool { return strings.Contains(s, substr) }), ops.Filter, nil
	})

	ops.RegisterLeaf("is_part_of", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_part_of", args, 1); err != nil {
			return nil, 0, err
		}
		choices, err := argStringList("is_part_of", args, 0)
		if err != nil {
			return nil, 0, err
		}
		set := make(map[string]bool, len(choices))
		for _, c := range choices {
			set[c] = true
		}
		return filter(func(s string) bool { return set[s] }), ops.Filter, nil
	})

	ops.RegisterLeaf("is_pattern", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_pattern", args, 1); err != nil {
			return nil, 0, err
		}
		pattern, err := argString("is_pattern", args, 0)
		if err != nil {
			return nil, 0, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, 0, err
		}
		return filter(re.MatchString), ops.Filter, nil
	})

	ops.RegisterLeaf("is_keyboard_walk", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_keyboard_walk", args, 0); err != nil {
			return nil, 0, err
		}
		return filter(isKeyboardWalk), ops.Filter, nil
	})

	ops.RegisterLeaf("is_walk", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("is_walk", args, 0); err != nil {
			return nil, 0, err
		}
		return filter(isKeyboardWalk), ops.Filter, nil
	})
}

// isKeyboardWalk reports whether s (length >= 3, case-folded) appears, or
// appears reversed, as a contiguous substring of one of the keyboard
// adjacency rows.
func isKeyboardWalk(s string) bool {
	s = lowerCaser.String(s)
	if len(s) < 3 {
		return false
	}
	for _, row := range keyboardRows {
		if strings.Contains(row, s) {
			return true
		}
		if strings.Contains(row, reverseString(s)) {
			return true
		}
	}
	return false
}
