package j2py

import (
	"strings"

	"github.com/gojlang/j2py/ast"
	"github.com/gojlang/j2py/class"
	"github.com/gojlang/j2py/token"
)

// Parser builds a class.Class forest from a TokenBuffer by recursive
// descent. It backtracks at most one token (via TokenBuffer.Unshift)
// and never re-parses a span twice.
type Parser struct {
	tb   *TokenBuffer
	sink *Sink
}

// NewParser lexes source and returns a Parser ready to produce classes.
// Diagnostics recorded while parsing go through sink.
func NewParser(source string, sink *Sink) *Parser {
	return &Parser{tb: NewTokenBuffer(source, sink), sink: sink}
}

// Parse consumes the whole buffer and returns every top-level class, in
// declaration order. A duplicate top-level class name is recorded as a
// diagnostic and the later declaration is dropped.
func (p *Parser) Parse() []*class.Class {
	var out []*class.Class
	seen := make(map[string]bool)
	for !p.tb.Empty() {
		cls := p.parseClass()
		if seen[cls.Name] {
			p.diag(cls.Line, cls.Name+" is already declared")
			continue
		}
		seen[cls.Name] = true
		out = append(out, cls)
	}
	return out
}

// diag records a warning/fatal diagnostic tagged with the reconstructed
// source line.
func (p *Parser) diag(line int, message string) {
	p.sink.Record(line, p.tb.LineText(line), message)
}

// shift consumes the next token and records (but does not halt on) a
// mismatch against expected — the combination of TokenBuffer.Shift and
// TokenBuffer.Expect the parser uses whenever it knows the exact literal
// it wants next (braces, semicolons, fixed keywords).
func (p *Parser) shift(expected string) Token {
	tok := p.tb.Shift(expected)
	p.tb.Expect(expected, tok.Literal)
	return tok
}

// ---- Classes and members --------------------------------------------

func (p *Parser) parseClass() *class.Class {
	startLine := p.tb.LineNumber()
	p.parseClassModifiers()
	p.shift("class")
	nameTok := p.tb.Shift("identifier")
	p.tb.Validate(nameTok.Literal, false)

	prevClass := p.sink.current
	p.sink.SetClass(nameTok.Literal)
	defer p.sink.SetClass(prevClass)

	super := ""
	if pk, ok := p.tb.Peek(); ok && pk.Literal == "extends" {
		p.shift("extends")
		superTok := p.tb.Shift("identifier")
		super = superTok.Literal
	}

	cls := class.New(nameTok.Literal, super, nameTok.Line)
	if text, ok := p.tb.Comment(startLine - 1); ok {
		cls.Comment = text
	}
	p.shift("{")
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == "}" {
			break
		}
		p.parseMember(cls)
	}
	p.shift("}")
	return cls
}

// parseClassModifiers consumes the modifiers preceding "class". "public"
// and "protected" are accepted and discarded; "private" and "static"
// are diagnosed (neither applies to a top-level or nested class) but
// still consumed so parsing stays in sync.
func (p *Parser) parseClassModifiers() {
	for {
		pk, ok := p.tb.Peek()
		if !ok {
			return
		}
		switch pk.Literal {
		case "public", "protected":
			p.shift(pk.Literal)
		case "private", "static":
			tok := p.shift(pk.Literal)
			p.diag(tok.Line, tok.Literal+" is not allowed on a class")
		default:
			return
		}
	}
}

// parseModifiers consumes the modifiers preceding a member declaration.
func (p *Parser) parseModifiers() class.Modifiers {
	mods := class.Modifiers{Public: true}
	for {
		pk, ok := p.tb.Peek()
		if !ok {
			return mods
		}
		switch pk.Literal {
		case "public", "protected":
			p.shift(pk.Literal)
		case "private":
			p.shift("private")
			mods.Public = false
		case "static":
			p.shift("static")
			mods.Static = true
		default:
			return mods
		}
	}
}

// parseMember parses one class-body entry: a nested class, a
// constructor, a method, or a variable-declaration list.
func (p *Parser) parseMember(cls *class.Class) {
	mods := p.parseModifiers()

	if pk, ok := p.tb.Peek(); ok && pk.Literal == "class" {
		nested := p.parseClass()
		if err := cls.AddNested(nested); err != nil {
			p.diag(nested.Line, err.Error())
		}
		return
	}

	typeLine := p.tb.LineNumber()
	typeName := p.parseTypeName()
	isArray := p.consumeArrayBrackets()

	if pk, ok := p.tb.Peek(); ok && pk.Literal == "(" {
		params := p.parseParams()
		body := p.parseBody()
		if typeName != cls.Name || isArray {
			p.diag(typeLine, typeName+" is not a valid constructor declaration")
		}
		m := &class.Method{Modifiers: mods, Params: params, Body: body, Line: typeLine}
		if err := cls.AddConstructor(m); err != nil {
			p.diag(typeLine, err.Error())
		}
		return
	}

	nameTok := p.tb.Shift("identifier")
	p.tb.Validate(nameTok.Literal, false)
	p.consumeArrayBrackets()

	if pk, ok := p.tb.Peek(); ok && pk.Literal == "(" {
		params := p.parseParams()
		body := p.parseBody()
		m := &class.Method{Modifiers: mods, Name: nameTok.Literal, Params: params, Body: body, Line: nameTok.Line}
		if err := cls.AddMethod(m); err != nil {
			p.diag(nameTok.Line, err.Error())
		}
		return
	}

	vars := []*class.Variable{p.finishClassVariable(mods, nameTok)}
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal != "," {
			break
		}
		p.shift(",")
		nTok := p.tb.Shift("identifier")
		p.tb.Validate(nTok.Literal, false)
		vars = append(vars, p.finishClassVariable(mods, nTok))
	}
	p.shift(";")
	for _, v := range vars {
		if err := cls.AddVariable(v); err != nil {
			p.diag(v.Line, err.Error())
		}
	}
}

// finishClassVariable parses the optional "= expr" of a single
// declarator and returns its Variable. The leading identifier has
// already been consumed by the caller.
func (p *Parser) finishClassVariable(mods class.Modifiers, nameTok Token) *class.Variable {
	p.consumeArrayBrackets()
	v := &class.Variable{Modifiers: mods, Name: nameTok.Literal, Line: nameTok.Line}
	if pk, ok := p.tb.Peek(); ok && pk.Literal == "=" {
		p.shift("=")
		v.Initializer = p.parseExpr()
	}
	return v
}

// parseTypeName consumes a (possibly dotted, possibly a built-in
// datatype keyword) type name and stops before any "(" or "[expr]" —
// the caller decides what follows. The name is never stored in the
// Class Model, since P is dynamically typed; parseMember only compares
// it against the class name to recognize a constructor.
func (p *Parser) parseTypeName() string {
	tok := p.tb.Shift("type name")
	if !token.IsDatatype(tok.Literal) {
		p.tb.Validate(tok.Literal, false)
	}
	name := tok.Literal
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal != "." {
			break
		}
		p.shift(".")
		id := p.tb.Shift("identifier")
		name += "." + id.Literal
	}
	return name
}

// consumeArrayBrackets eats zero or more "[]" pairs (an array-type
// suffix) and reports whether at least one was found.
func (p *Parser) consumeArrayBrackets() bool {
	found := false
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal != "[" {
			break
		}
		p.shift("[")
		p.shift("]")
		found = true
	}
	return found
}

// parseParams parses a parenthesized, comma-separated parameter list.
// Each parameter is "datatype []* identifier []*"; only the identifier
// survives into the Class Model.
func (p *Parser) parseParams() []string {
	p.shift("(")
	var params []string
	seen := make(map[string]bool)
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == ")" {
			break
		}
		p.parseTypeName()
		p.consumeArrayBrackets()
		nameTok := p.tb.Shift("identifier")
		p.tb.Validate(nameTok.Literal, false)
		p.consumeArrayBrackets()
		if seen[nameTok.Literal] {
			p.diag(nameTok.Line, nameTok.Literal+" is already a parameter")
		}
		seen[nameTok.Literal] = true
		params = append(params, nameTok.Literal)
		if pk2, ok2 := p.tb.Peek(); ok2 && pk2.Literal == "," {
			p.shift(",")
			continue
		}
		break
	}
	p.shift(")")
	return params
}

// parseBody parses a brace-delimited method or constructor body into
// its statement list (not wrapped in an ast.Block — a method's body is
// a plain []ast.Statement in the Class Model).
func (p *Parser) parseBody() []ast.Statement {
	p.shift("{")
	var stmts []ast.Statement
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == "}" {
			break
		}
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.shift("}")
	return stmts
}

// ---- Statements -------------------------------------------------------

// parseStatement dispatches on the leading token to decide which
// statement grammar rule applies.
func (p *Parser) parseStatement() ast.Statement {
	pk, ok := p.tb.Peek()
	if !ok {
		return nil
	}
	switch pk.Literal {
	case "return":
		return p.parseReturn()
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "for":
		return p.parseFor()
	case "{":
		return p.parseBlock()
	case "new":
		line := p.tb.LineNumber()
		expr := p.parseNewExpr()
		p.shift(";")
		return &ast.Call{Chain: expr, Line: line}
	default:
		if token.IsUnsupported(pk.Literal) {
			tok := p.shift(pk.Literal)
			p.diag(tok.Line, tok.Literal+" is not supported")
			p.skipStatement()
			return nil
		}
		line := p.tb.LineNumber()
		stmt := p.parseChainStatement(line)
		p.shift(";")
		return stmt
	}
}

// skipStatement discards tokens through the next ";" (or up to an
// enclosing "}") so a diagnosed, unparseable statement does not
// desynchronize the rest of the body in warning mode.
func (p *Parser) skipStatement() {
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == "}" {
			return
		}
		tok := p.tb.Shift(pk.Literal)
		if tok.Literal == ";" {
			return
		}
	}
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.shift("return")
	var expr ast.Expression
	if pk, ok := p.tb.Peek(); ok && pk.Literal != ";" {
		expr = p.parseExpr()
	}
	p.shift(";")
	return &ast.Return{Expr: expr, Line: tok.Line}
}

func (p *Parser) parseIf() *ast.If {
	tok := p.shift("if")
	p.shift("(")
	cond := p.parseExpr()
	p.shift(")")
	then := p.parseStatement()
	var els ast.Statement
	if pk, ok := p.tb.Peek(); ok && pk.Literal == "else" {
		p.shift("else")
		els = p.parseStatement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els, Line: tok.Line}
}

func (p *Parser) parseWhile() *ast.While {
	tok := p.shift("while")
	p.shift("(")
	cond := p.parseExpr()
	p.shift(")")
	body := p.parseStatement()
	return &ast.While{Cond: cond, Body: body, Line: tok.Line}
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.shift("{")
	var stmts []ast.Statement
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == "}" {
			break
		}
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.shift("}")
	return &ast.Block{Stmts: stmts, Line: tok.Line}
}

// parseFor parses a C-style for or an enhanced for, disambiguating by
// what follows the init clause's identifier chain: an identifier
// followed by ":" means a foreach ("Type name : iterable"); otherwise
// that identifier is pushed back and parsing continues as an ordinary
// for-init.
func (p *Parser) parseFor() ast.Statement {
	tok := p.shift("for")
	p.shift("(")

	if pk, ok := p.tb.Peek(); ok && pk.Literal == ";" {
		p.shift(";")
		return p.finishCStyleFor(tok, nil)
	}

	line := p.tb.LineNumber()
	chain := p.parseIdentChain()

	if pk, ok := p.tb.Peek(); ok && p.tb.Validate(pk.Literal, true) {
		nameTok := p.tb.Shift("identifier")
		if pk2, ok2 := p.tb.Peek(); ok2 && pk2.Literal == ":" {
			p.shift(":")
			iterable := p.parseExpr()
			p.shift(")")
			body := p.parseStatement()
			return &ast.ForEach{VarName: nameTok.Literal, Iterable: iterable, Body: body, Line: tok.Line}
		}
		p.tb.Unshift(nameTok)
	}

	init := p.finishChainStatement(chain, line)
	p.shift(";")
	return p.finishCStyleFor(tok, init)
}

func (p *Parser) finishCStyleFor(tok Token, init ast.Statement) *ast.For {
	var cond ast.Expression
	if pk, ok := p.tb.Peek(); ok && pk.Literal != ";" {
		cond = p.parseExpr()
	}
	p.shift(";")
	var post ast.Statement
	if pk, ok := p.tb.Peek(); ok && pk.Literal != ")" {
		post = p.parseChainStatement(p.tb.LineNumber())
	}
	p.shift(")")
	body := p.parseStatement()
	return &ast.For{Init: init, Cond: cond, Post: post, Body: body, Line: tok.Line}
}

// parseChainStatement parses and classifies one Assign/Call/Declare
// statement, leaving the trailing ";" (or, inside a for-clause, ")" or
// ";") for the caller to consume.
func (p *Parser) parseChainStatement(line int) ast.Statement {
	return p.finishChainStatement(p.parseIdentChain(), line)
}

// finishChainStatement classifies an already-parsed leading chain: "="
// makes it an Assign; a trailing "++" or "--" makes it an Assign of
// "chain + 1" or "chain - 1"; a following identifier means chain was a
// type name, and it becomes a Declare; anything else makes it a bare
// Call.
func (p *Parser) finishChainStatement(chain *ast.IdentChain, line int) ast.Statement {
	pk, ok := p.tb.Peek()
	if !ok {
		return &ast.Call{Chain: chain, Line: line}
	}
	switch {
	case pk.Literal == "=":
		p.shift("=")
		val := p.parseExpr()
		return &ast.Assign{Target: chain, Value: val, Line: line}
	case pk.Literal == "++" || pk.Literal == "--":
		tok := p.shift(pk.Literal)
		op := "+"
		if tok.Literal == "--" {
			op = "-"
		}
		return &ast.Assign{
			Target: chain,
			Value:  &ast.Binary{Op: op, Left: chain, Right: &ast.NumberLit{Value: "1"}},
			Line:   line,
		}
	case p.tb.Validate(pk.Literal, true):
		nameTok := p.tb.Shift("identifier")
		return p.finishDeclareList(nameTok, line)
	default:
		return &ast.Call{Chain: chain, Line: line}
	}
}

func (p *Parser) finishDeclareList(nameTok Token, line int) *ast.Declare {
	p.tb.Validate(nameTok.Literal, false)
	vars := []ast.DeclareVar{p.finishDeclareVar(nameTok)}
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal != "," {
			break
		}
		p.shift(",")
		nTok := p.tb.Shift("identifier")
		p.tb.Validate(nTok.Literal, false)
		vars = append(vars, p.finishDeclareVar(nTok))
	}
	return &ast.Declare{Vars: vars, Line: line}
}

func (p *Parser) finishDeclareVar(nameTok Token) ast.DeclareVar {
	var init ast.Expression
	if pk, ok := p.tb.Peek(); ok && pk.Literal == "=" {
		p.shift("=")
		init = p.parseExpr()
	}
	return ast.DeclareVar{Name: nameTok.Literal, Init: init}
}

// ---- Expressions ------------------------------------------------------

// isBinaryOp reports whether literal is one of the operators
// recognized in the right-recursive "primary (OP expr)?" grammar.
// "<<" and ">>" are deliberately excluded — bitwise shift has no
// direct equivalent worth emitting, so it is rejected with a
// diagnostic instead (see parseExpr).
func isBinaryOp(literal string) bool {
	switch literal {
	case "+", "-", "*", "/", "<", ">", "<=", ">=", "==", "!=", "&&", "||", "&", "|":
		return true
	}
	return false
}

func (p *Parser) parseExpr() ast.Expression {
	left := p.parsePrimary()
	pk, ok := p.tb.Peek()
	if !ok {
		return left
	}
	if pk.Literal == "<<" || pk.Literal == ">>" {
		tok := p.shift(pk.Literal)
		p.diag(tok.Line, "unsupported operator "+tok.Literal)
		right := p.parseExpr()
		return &ast.Binary{Op: tok.Literal, Left: left, Right: right}
	}
	if isBinaryOp(pk.Literal) {
		op := p.shift(pk.Literal).Literal
		right := p.parseExpr()
		return &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parsePrimary() ast.Expression {
	tok, ok := p.tb.Peek()
	if !ok {
		p.tb.Shift("expression")
		return nil
	}
	switch {
	case tok.Literal == "true":
		p.shift("true")
		return &ast.BoolLit{Value: true}
	case tok.Literal == "false":
		p.shift("false")
		return &ast.BoolLit{Value: false}
	case tok.Literal == "null":
		p.shift("null")
		return &ast.NullLit{}
	case tok.Literal == `"`:
		return p.parseStringLit()
	case tok.Literal == "{":
		return p.parseArrayLiteral()
	case tok.Literal == "(":
		p.shift("(")
		inner := p.parseExpr()
		p.shift(")")
		return &ast.Paren{Inner: inner}
	case tok.Literal == "+" || tok.Literal == "-" || tok.Literal == "!":
		p.shift(tok.Literal)
		return &ast.Unary{Op: tok.Literal, Operand: p.parsePrimary()}
	case tok.Literal == "new":
		return p.parseNewExpr()
	case IsNumber(tok.Literal):
		p.shift(tok.Literal)
		return &ast.NumberLit{Value: tok.Literal}
	default:
		return p.parseIdentChain()
	}
}

func (p *Parser) parseStringLit() *ast.StringLit {
	p.shift(`"`)
	var words []string
	for {
		tok, ok := p.tb.Peek()
		if !ok || tok.Literal == `"` {
			break
		}
		words = append(words, p.tb.Shift(tok.Literal).Literal)
	}
	p.shift(`"`)
	return &ast.StringLit{Value: strings.Join(words, " ")}
}

func (p *Parser) parseArrayLiteral() *ast.ArrayLiteral {
	p.shift("{")
	var elems []ast.Expression
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == "}" {
			break
		}
		elems = append(elems, p.parseExpr())
		if pk2, ok2 := p.tb.Peek(); ok2 && pk2.Literal == "," {
			p.shift(",")
			continue
		}
		break
	}
	p.shift("}")
	return &ast.ArrayLiteral{Elements: elems}
}

// parseNewExpr parses "new IdentifierChain" followed by either a
// constructor call's arguments or one or more array-size dimensions; a
// bare "new Foo" with neither is treated as a zero-argument
// construction.
func (p *Parser) parseNewExpr() *ast.NewExpr {
	p.shift("new")
	nameTok := p.tb.Shift("type name")
	typeName := nameTok.Literal
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal != "." {
			break
		}
		p.shift(".")
		id := p.tb.Shift("identifier")
		typeName += "." + id.Literal
	}

	if pk, ok := p.tb.Peek(); ok && pk.Literal == "(" {
		return &ast.NewExpr{Type: typeName, Args: p.parseArgs()}
	}

	var dims []ast.Expression
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal != "[" {
			break
		}
		p.shift("[")
		dims = append(dims, p.parseExpr())
		p.shift("]")
	}
	if len(dims) > 0 {
		return &ast.NewExpr{Type: typeName, Dims: dims}
	}
	return &ast.NewExpr{Type: typeName, Args: []ast.Expression{}}
}

func (p *Parser) parseArgs() []ast.Expression {
	p.shift("(")
	args := []ast.Expression{}
	for {
		pk, ok := p.tb.Peek()
		if !ok || pk.Literal == ")" {
			break
		}
		args = append(args, p.parseExpr())
		if pk2, ok2 := p.tb.Peek(); ok2 && pk2.Literal == "," {
			p.shift(",")
			continue
		}
		break
	}
	p.shift(")")
	return args
}

// parseIdentChain parses a leading identifier (or, in a type position,
// a datatype keyword) followed by zero or more field, index, or call
// accesses. An empty "[]" pair — meaningful only in a type position —
// is consumed and discarded rather than recorded as an index access.
func (p *Parser) parseIdentChain() *ast.IdentChain {
	tok := p.tb.Shift("identifier")
	if !token.IsDatatype(tok.Literal) && tok.Literal != "this" {
		p.tb.Validate(tok.Literal, false)
	}
	chain := &ast.IdentChain{Name: tok.Literal}
	for {
		pk, ok := p.tb.Peek()
		if !ok {
			return chain
		}
		switch pk.Literal {
		case ".":
			p.shift(".")
			id := p.tb.Shift("identifier")
			chain.Accesses = append(chain.Accesses, ast.Access{Field: id.Literal})
		case "[":
			p.shift("[")
			if nxt, ok := p.tb.Peek(); ok && nxt.Literal == "]" {
				p.shift("]")
				continue
			}
			idx := p.parseExpr()
			p.shift("]")
			chain.Accesses = append(chain.Accesses, ast.Access{Index: idx})
		case "(":
			chain.Accesses = append(chain.Accesses, ast.Access{Args: p.parseArgs()})
		default:
			return chain
		}
	}
}
