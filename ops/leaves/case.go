package leaves

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/ops"
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
	titleCaser = cases.Title(language.Und)
)

func init() {
	ops.RegisterLeaf("lower", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("lower", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(lowerCaser.String), ops.Transformer, nil
	})
	ops.RegisterLeaf("upper", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("upper", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(upperCaser.String), ops.Transformer, nil
	})
	ops.RegisterLeaf("title", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("title", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(titleCaser.String), ops.Transformer, nil
	})
	ops.RegisterLeaf("capitalize", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("capitalize", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(capitalize), ops.Transformer, nil
	})
	ops.RegisterLeaf("swapcase", func(args []ast.Literal) (ops.ElementOp, ops.Kind, error) {
		if err := requireArgs("swapcase", args, 0); err != nil {
			return nil, 0, err
		}
		return transform(swapcase), ops.Transformer, nil
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	head := upperCaser.String(string(r[0]))
	tail := lowerCaser.String(string(r[1:]))
	return head + tail
}

func swapcase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case 'A' <= r && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
