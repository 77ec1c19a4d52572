// Package parse turns a lex.Scanner's token stream into an ast.Script, the
// second stage of the four-stage pipeline described in spec.md §2 and §4.1.
//
// The grammar is recursive descent with one token of lookahead (two for
// the `[] = ...` sentinel clause), following
// the shape of the teacher's own parse.Parser (robpike.io/ivy/parse): a
// small buffer of unread tokens, panic/recover for fatal syntax errors, and
// one function per production.
package parse

import (
	"fmt"
	"strconv"

	"github.com/dictionaryjuggler/dj/ast"
	"github.com/dictionaryjuggler/dj/lex"
	"github.com/dictionaryjuggler/dj/token"
)

// Error is a fatal syntax error. It implements error.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parse parses a complete script. name is used only for error messages.
func Parse(name, src string) (*ast.Script, error) {
	p := &Parser{scanner: lex.New(name, src)}
	var script *ast.Script
	err := p.catch(func() { script = p.parseScript() })
	if err != nil {
		return nil, err
	}
	return script, nil
}

// Parser holds the token lookahead buffer. It is not safe for concurrent
// use; each script gets its own.
type Parser struct {
	scanner *lex.Scanner
	buf     []token.Token
}

func (p *Parser) catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	panic(&Error{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf(format, args...)})
}

func (p *Parser) errorAt(pos ast.Position, format string, args ...interface{}) {
	panic(&Error{Line: pos.Line, Column: pos.Column, Msg: fmt.Sprintf(format, args...)})
}

func (p *Parser) peekN(n int) token.Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.scanner.Next())
	}
	return p.buf[n]
}

func (p *Parser) peek() token.Token { return p.peekN(0) }

func (p *Parser) next() token.Token {
	tok := p.peek()
	p.buf = p.buf[1:]
	if tok.Type == token.Error {
		p.errorf(tok, "%s", tok.Text)
	}
	return tok
}

func (p *Parser) expect(t token.Type) token.Token {
	tok := p.next()
	if tok.Type != t {
		p.errorf(tok, "expected %s, got %s", t, tok.Type)
	}
	return tok
}

func (p *Parser) expectIdent(text string) token.Token {
	tok := p.next()
	if tok.Type != token.Ident || tok.Text != text {
		p.errorf(tok, "expected %q, got %s %q", text, tok.Type, tok.Text)
	}
	return tok
}

func (p *Parser) expectIdentOneOf(choices ...string) token.Token {
	tok := p.next()
	if tok.Type == token.Ident {
		for _, c := range choices {
			if tok.Text == c {
				return tok
			}
		}
	}
	p.errorf(tok, "expected one of %v, got %s %q", choices, tok.Type, tok.Text)
	panic("unreachable")
}

// expectName consumes an Ident token that follows the NAME convention
// (leading uppercase letter), which is what lets the parser tell a named
// list/macro reference apart from a lowercase op-name without backtracking.
func (p *Parser) expectName() token.Token {
	tok := p.expect(token.Ident)
	if !startsUpper(tok.Text) {
		p.errorf(tok, "expected a NAME (starting with an uppercase letter), got %q", tok.Text)
	}
	return tok
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}

func (p *Parser) atIdent(text string) bool {
	tok := p.peek()
	return tok.Type == token.Ident && tok.Text == text
}

func (p *Parser) skipNewlines() {
	for p.peek().Type == token.Newline {
		p.next()
	}
}

func pos(tok token.Token) ast.Position { return ast.Position{Line: tok.Line, Column: tok.Column} }

// --- Script / Header -------------------------------------------------------

var directiveKeywords = map[string]bool{
	"ignore": true, "create": true, "list": true, "set": true,
	"global_list": true, "global_set": true, "config": true, "def": true,
}

func (p *Parser) isDirectiveStart() bool {
	tok := p.peek()
	return tok.Type == token.Ident && directiveKeywords[tok.Text]
}

func (p *Parser) parseScript() *ast.Script {
	script := &ast.Script{}
	p.skipNewlines()
	for p.isDirectiveStart() {
		p.parseDirective(&script.Header)
		p.skipNewlines()
	}
	for p.peek().Type != token.EOF {
		script.Body = append(script.Body, p.parseStatement())
		p.skipNewlines()
	}
	return script
}

func (p *Parser) parseDirective(h *ast.Header) {
	kw := p.next()
	switch kw.Text {
	case "ignore":
		s := p.expect(token.String)
		h.Ignore = append(h.Ignore, s.Text)
	case "create":
		s := p.expect(token.String)
		h.Create = append(h.Create, s.Text)
	case "list", "set":
		name := p.expectName()
		h.Lists = append(h.Lists, ast.ListDecl{Name: name.Text, Set: kw.Text == "set", Pos: pos(kw)})
	case "global_list", "global_set":
		name := p.expectName()
		path := p.expect(token.String)
		decl := ast.GlobalListDecl{Name: name.Text, Set: kw.Text == "global_set", Path: path.Text, Pos: pos(kw)}
		if p.peek().Type == token.LParen {
			p.next()
			decl.Ops = p.parseChain(stopAtParenOrComma)
			p.expect(token.RParen)
		}
		h.GlobalLists = append(h.GlobalLists, decl)
	case "config":
		opName := p.expect(token.Ident)
		param := p.expect(token.Ident)
		lit := p.parseLiteral()
		h.Configs = append(h.Configs, ast.ConfigDirective{OpName: opName.Text, Param: param.Text, Value: lit, Pos: pos(kw)})
	case "def":
		name := p.expectName()
		body := p.parseChain(stopAtNewlineEOF)
		if len(body) == 0 {
			p.errorf(p.peek(), "macro %q has an empty body", name.Text)
		}
		h.Macros = append(h.Macros, ast.MacroDef{Name: name.Text, Body: body, Pos: pos(kw)})
	default:
		p.errorf(kw, "unknown directive %q", kw.Text)
	}
}

// --- Statements -------------------------------------------------------------

func (p *Parser) parseStatement() ast.ComplexOperation {
	start := p.peek()
	var useNames []string
	if p.atIdent("use") {
		p.next()
		for p.peek().Type == token.Ident && startsUpper(p.peek().Text) {
			useNames = append(useNames, p.next().Text)
		}
		if len(useNames) == 0 {
			p.errorf(p.peek(), "expected at least one NAME after 'use'")
		}
	}
	ops := p.parseChain(stopAtNewlineEOF)
	if len(ops) == 0 {
		p.errorf(p.peek(), "expected an operation, got %s", p.peek().Type)
	}
	return ast.ComplexOperation{UseNames: useNames, Ops: ops, Pos: pos(start)}
}

// --- Operation chains --------------------------------------------------------

type stopFn func(token.Token) bool

func stopAtNewlineEOF(t token.Token) bool { return t.Type == token.Newline || t.Type == token.EOF }
func stopAtParenOrComma(t token.Token) bool {
	return t.Type == token.RParen || t.Type == token.Comma || t.Type == token.EOF
}
func stopAtBrace(t token.Token) bool { return t.Type == token.RBrace || t.Type == token.EOF }

func (p *Parser) parseChain(stop stopFn) []ast.Op {
	var ops []ast.Op
	for !stop(p.peek()) {
		ops = append(ops, p.parseOperation())
	}
	return ops
}

var combinatorNames = map[string]bool{
	"or": true, "ilist_if_all": true, "ilist_if_any": true, "ilist_foreach": true,
	"ilist_concat": true, "ilist_unique": true, "iset_unique": true,
	"ilist_max": true, "iset_max": true, "ilist_ratio": true, "restart": true,
	"select_longest": true, "ilist_select_longest": true, "iset_select_longest": true,
}

func (p *Parser) parseOperation() ast.Op {
	mod := ast.ModNone
	switch p.peek().Type {
	case token.ModPlus:
		mod = ast.ModPlus
		p.next()
	case token.ModStar:
		mod = ast.ModStar
		p.next()
	case token.ModBang:
		mod = ast.ModBang
		p.next()
	case token.ModTilde:
		mod = ast.ModTilde
		p.next()
	}

	tok := p.peek()
	switch tok.Type {
	case token.LBrace:
		return p.parseBlock(mod)
	case token.Ident:
		if tok.Text == "do" {
			p.next()
			name := p.expectName()
			return &ast.MacroInvocation{Mod: mod, Name: name.Text, Pos: pos(tok)}
		}
		if combinatorNames[tok.Text] {
			return p.parseCombinator(mod)
		}
		return p.parseLeaf(mod)
	default:
		p.errorf(tok, "expected an operation, got %s", tok.Type)
	}
	panic("unreachable")
}

// --- Leaves -------------------------------------------------------------

// Most leaves take zero or more bare literal arguments (strings, integers,
// bracketed lists). A few surface as a keyword phrase instead of a plain
// op-name, mirroring the per-operation grammar rules of
// original_source/grammar.py; those get their own parsing rule here and are
// normalized to the leaf name the registry in ops/leaves actually uses.
var leafArgShapes = map[string]func(*Parser) (string, []ast.Literal){
	"min": parseMinMaxLengthShape("min_length"),
	"max": parseMinMaxLengthShape("max_length"),
}

func parseMinMaxLengthShape(leafName string) func(*Parser) (string, []ast.Literal) {
	return func(p *Parser) (string, []ast.Literal) {
		p.expectIdent("length")
		n := p.expect(token.Int)
		v, err := strconv.Atoi(n.Text)
		if err != nil {
			p.errorf(n, "invalid integer %q", n.Text)
		}
		return leafName, []ast.Literal{ast.Int(v)}
	}
}

func isLiteralStart(t token.Token) bool {
	switch t.Type {
	case token.String, token.Int, token.LBracket:
		return true
	}
	return false
}

func (p *Parser) parseLeaf(mod ast.Modifier) ast.Op {
	nameTok := p.next()
	leafPos := pos(nameTok)
	if shape, ok := leafArgShapes[nameTok.Text]; ok {
		name, args := shape(p)
		return &ast.LeafOp{Mod: mod, Name: name, Args: args, Pos: leafPos}
	}
	var args []ast.Literal
	for isLiteralStart(p.peek()) {
		args = append(args, p.parseLiteral())
	}
	return &ast.LeafOp{Mod: mod, Name: nameTok.Text, Args: args, Pos: leafPos}
}

func (p *Parser) parseLiteral() ast.Literal {
	tok := p.next()
	switch tok.Type {
	case token.String:
		return ast.String(tok.Text)
	case token.Int:
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			p.errorf(tok, "invalid integer %q", tok.Text)
		}
		return ast.Int(n)
	case token.LBracket:
		var items []ast.Literal
		if p.peek().Type != token.RBracket {
			items = append(items, p.parseLiteral())
			for p.peek().Type == token.Comma {
				p.next()
				items = append(items, p.parseLiteral())
			}
		}
		p.expect(token.RBracket)
		return ast.List(items)
	default:
		p.errorf(tok, "expected a literal, got %s", tok.Type)
	}
	panic("unreachable")
}

func (p *Parser) parseNumber() float64 {
	tok := p.next()
	switch tok.Type {
	case token.Int:
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			p.errorf(tok, "invalid integer %q", tok.Text)
		}
		return float64(n)
	case token.Float:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errorf(tok, "invalid number %q", tok.Text)
		}
		return f
	default:
		p.errorf(tok, "expected a number, got %s", tok.Type)
	}
	panic("unreachable")
}

// --- Blocks -------------------------------------------------------------

func (p *Parser) parseBlock(mod ast.Modifier) ast.Op {
	lbrace := p.expect(token.LBrace)
	inner := p.parseChain(stopAtBrace)
	p.expect(token.RBrace)

	var sink ast.Sink
	switch p.peek().Type {
	case token.SinkAppend:
		p.next()
		sink = ast.Sink{Kind: ast.SinkAppend, List: p.expectName().Text}
	case token.SinkSurvived:
		p.next()
		sink = ast.Sink{Kind: ast.SinkSurvived, List: p.expectName().Text}
	case token.SinkTee:
		p.next()
		sink = ast.Sink{Kind: ast.SinkTee, List: p.expectName().Text}
	case token.SinkTeeSurv:
		p.next()
		sink = ast.Sink{Kind: ast.SinkTeeSurvived, List: p.expectName().Text}
	}
	return &ast.BlockOp{Mod: mod, Inner: inner, Sink: sink, Pos: pos(lbrace)}
}

// --- Combinators -------------------------------------------------------------

func (p *Parser) parseCombinator(mod ast.Modifier) ast.Op {
	nameTok := p.next()
	name := nameTok.Text
	cpos := pos(nameTok)
	switch name {
	case "restart":
		return p.parseRestart(mod, cpos)
	case "ilist_max", "iset_max":
		return p.parseIlistMax(mod, name, cpos)
	case "ilist_ratio":
		return p.parseIlistRatio(mod, cpos)
	case "ilist_concat":
		return p.parseIlistConcat(mod, cpos)
	case "ilist_unique", "iset_unique", "select_longest", "ilist_select_longest", "iset_select_longest":
		return &ast.CombinatorOp{Mod: mod, Name: name, Pos: cpos}
	case "or":
		return p.parseParenClauses(mod, name, cpos, -1)
	case "ilist_if_all", "ilist_if_any":
		return p.parseQuantifier(mod, name, cpos)
	case "ilist_foreach":
		return p.parseParenClauses(mod, name, cpos, 1)
	}
	p.errorf(nameTok, "unknown combinator %q", name)
	panic("unreachable")
}

// parseParenClauses parses `( chain (, chain)* )`. want < 0 means any
// non-zero number of clauses is accepted.
func (p *Parser) parseParenClauses(mod ast.Modifier, name string, cpos ast.Position, want int) ast.Op {
	p.expect(token.LParen)
	clauses := [][]ast.Op{p.parseChain(stopAtParenOrComma)}
	for p.peek().Type == token.Comma {
		p.next()
		clauses = append(clauses, p.parseChain(stopAtParenOrComma))
	}
	p.expect(token.RParen)
	if want >= 0 && len(clauses) != want {
		p.errorAt(cpos, "%s expects %d operand chain(s), got %d", name, want, len(clauses))
	}
	for _, c := range clauses {
		if len(c) == 0 {
			p.errorAt(cpos, "%s: operand chain must not be empty", name)
		}
	}
	return &ast.CombinatorOp{Mod: mod, Name: name, Clauses: clauses, Pos: cpos}
}

// parseQuantifier parses ilist_if_all/ilist_if_any's
// `( chain (, "N/A" = True|False)? (, "[]" = True|False)? )` form.
func (p *Parser) parseQuantifier(mod ast.Modifier, name string, cpos ast.Position) ast.Op {
	p.expect(token.LParen)
	chain := p.parseChain(stopAtParenOrComma)
	if len(chain) == 0 {
		p.errorAt(cpos, "%s: operand chain must not be empty", name)
	}
	op := &ast.CombinatorOp{Mod: mod, Name: name, Clauses: [][]ast.Op{chain}, Pos: cpos}
	for p.peek().Type == token.Comma {
		p.next()
		p.parseSentinelClause(op)
	}
	p.expect(token.RParen)
	return op
}

func (p *Parser) parseSentinelClause(op *ast.CombinatorOp) {
	var key string
	switch {
	case p.atIdent("N/A"):
		p.next()
		key = "N/A"
	case p.peek().Type == token.LBracket && p.peekN(1).Type == token.RBracket:
		p.next()
		p.next()
		key = "[]"
	default:
		p.errorf(p.peek(), "expected 'N/A' or '[]' sentinel clause")
	}
	p.expect(token.Assign)
	val := p.expectIdentOneOf("True", "False")
	isFalse := val.Text == "False"
	switch key {
	case "N/A":
		op.NAFalse = isFalse
		op.NASet = true
	case "[]":
		op.NilFalse = isFalse
		op.NilSet = true
	}
}

// parseIlistMax parses `ilist_max length (< INT | INT)`.
func (p *Parser) parseIlistMax(mod ast.Modifier, name string, cpos ast.Position) ast.Op {
	p.expectIdent("length")
	cmp := "<="
	if p.peek().Type == token.Lt {
		p.next()
		cmp = "<"
	}
	n := p.expect(token.Int)
	v, err := strconv.Atoi(n.Text)
	if err != nil {
		p.errorf(n, "invalid integer %q", n.Text)
	}
	return &ast.CombinatorOp{Mod: mod, Name: name, StrArg: cmp, IntArg: &v, Pos: cpos}
}

// parseIlistRatio parses `ilist_ratio "joined"? < FLOAT ( chain, chain )`.
func (p *Parser) parseIlistRatio(mod ast.Modifier, cpos ast.Position) ast.Op {
	flavor := "count"
	if p.atIdent("joined") {
		p.next()
		flavor = "joined"
	}
	p.expect(token.Lt)
	ratio := p.parseNumber()
	p.expect(token.LParen)
	a := p.parseChain(stopAtParenOrComma)
	p.expect(token.Comma)
	b := p.parseChain(stopAtParenOrComma)
	p.expect(token.RParen)
	if len(a) == 0 || len(b) == 0 {
		p.errorAt(cpos, "ilist_ratio: both operand chains must be non-empty")
	}
	return &ast.CombinatorOp{Mod: mod, Name: "ilist_ratio", StrArg: flavor, RatioArg: ratio, Clauses: [][]ast.Op{a, b}, Pos: cpos}
}

// parseIlistConcat parses `ilist_concat STRING?`.
func (p *Parser) parseIlistConcat(mod ast.Modifier, cpos ast.Position) ast.Op {
	sep := ""
	if p.peek().Type == token.String {
		sep = p.next().Text
	}
	return &ast.CombinatorOp{Mod: mod, Name: "ilist_concat", StrArg: sep, Pos: cpos}
}

// parseRestart parses `restart INT? ( chain, chain )`.
func (p *Parser) parseRestart(mod ast.Modifier, cpos ast.Position) ast.Op {
	n := 1
	if p.peek().Type == token.Int {
		v, err := strconv.Atoi(p.next().Text)
		if err != nil {
			p.errorAt(cpos, "invalid restart bound")
		}
		n = v
	}
	p.expect(token.LParen)
	filter := p.parseChain(stopAtParenOrComma)
	p.expect(token.Comma)
	body := p.parseChain(stopAtParenOrComma)
	p.expect(token.RParen)
	if len(filter) == 0 || len(body) == 0 {
		p.errorAt(cpos, "restart: both the filter and body chains must be non-empty")
	}
	return &ast.CombinatorOp{Mod: mod, Name: "restart", IntArg: &n, Clauses: [][]ast.Op{filter, body}, Pos: cpos}
}
