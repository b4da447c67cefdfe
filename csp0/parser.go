package csp0

import (
	"strconv"

	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/process"
	"github.com/hst-go/hst/internal/herrors"
)

// Program is the result of parsing one CSP0 file: the outermost expression
// plus every name ever bound by a let block anywhere in the file, since
// recursion targets outlive the let block that minted them and the CLI
// needs to look processes up by name.
type Program struct {
	Root  process.Process
	Names map[string]process.Process
}

// Lookup resolves a top-level process name, as used by the `reachable` and
// `refines` commands.
func (pr *Program) Lookup(name string) (process.Process, bool) {
	p, ok := pr.Names[name]
	return p, ok
}

type bindingName struct {
	name string
	tok  Token
}

// Parser is a recursive-descent parser over a pre-lexed token slice,
// building process.Process values directly into env as it goes rather than
// an intermediate AST: the core registry's interning already gives every
// subexpression a canonical identity, so there is nothing an AST node would
// add here.
type Parser struct {
	tokens []Token
	pos    int
	env    *process.Env
	names  map[string]process.Process

	// scopesByTag lets the debug form X@N address a target by scope id
	// directly, independent of lexical nesting.
	scopesByTag map[uint64]*process.Scope
	allScopes   []*process.Scope
}

// NewParser wraps a pre-lexed token stream for a single parse.
func NewParser(tokens []Token, env *process.Env) *Parser {
	return &Parser{
		tokens:      tokens,
		env:         env,
		names:       make(map[string]process.Process),
		scopesByTag: make(map[uint64]*process.Scope),
	}
}

// Parse lexes and parses src in one call.
func Parse(src []byte, env *process.Env) (*Program, error) {
	lex := NewLexer(src)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens, env)
	return p.ParseProgram()
}

// ParseProgram parses the whole token stream as one expression, then
// confirms every recursion target minted along the way was eventually
// filled.
func (p *Parser) ParseProgram() (*Program, error) {
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.unexpectedToken("end of input")
	}
	for _, scope := range p.allScopes {
		if n := scope.UnfilledCount(); n > 0 {
			return nil, p.unfilledScope(p.cur(), n)
		}
	}
	return &Program{Root: root, Names: p.names}, nil
}

func (p *Parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool {
	return p.cur().Type == TokEOF
}

func (p *Parser) expect(tt TokenType, desc string) (Token, error) {
	if p.cur().Type != tt {
		return Token{}, p.unexpectedToken(desc)
	}
	return p.advance(), nil
}

// parseExpr is the loosest precedence level: `let ... within ...`, or
// anything tighter.
func (p *Parser) parseExpr() (process.Process, error) {
	if p.cur().Type == TokLet {
		return p.parseLet()
	}
	return p.parseInterleaveChain()
}

// parseInterleaveChain handles binary `|||`/`⫴`, left-associative.
func (p *Parser) parseInterleaveChain() (process.Process, error) {
	left, err := p.parseIntChoiceChain()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokInterleave {
		p.advance()
		right, err := p.parseIntChoiceChain()
		if err != nil {
			return nil, err
		}
		left = process.Interleave(p.env, process.NewBag(left, right))
	}
	return left, nil
}

// parseIntChoiceChain handles binary `|~|`/`⊓`, left-associative.
func (p *Parser) parseIntChoiceChain() (process.Process, error) {
	left, err := p.parseExtChoiceChain()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokIntChoice {
		p.advance()
		right, err := p.parseExtChoiceChain()
		if err != nil {
			return nil, err
		}
		left = process.InternalChoice(p.env, process.NewSet(left, right))
	}
	return left, nil
}

// parseExtChoiceChain handles binary `[]`/`□`, left-associative.
func (p *Parser) parseExtChoiceChain() (process.Process, error) {
	left, err := p.parseSeqComp()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokExtChoice {
		p.advance()
		right, err := p.parseSeqComp()
		if err != nil {
			return nil, err
		}
		left = process.ExternalChoice(p.env, process.NewSet(left, right))
	}
	return left, nil
}

// parseSeqComp handles `;`, left-associative.
func (p *Parser) parseSeqComp() (process.Process, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokSemi {
		p.advance()
		right, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		left = process.SeqComp(p.env, left, right)
	}
	return left, nil
}

// parsePrefix handles `id -> P`, right-associative: an identifier is only
// ever an event name here when immediately followed by an arrow; otherwise
// it falls through to parsePrimary as a process reference.
func (p *Parser) parsePrefix() (process.Process, error) {
	if p.cur().Type == TokIdent && p.peek(1).Type == TokArrow {
		nameTok := p.advance()
		p.advance() // arrow
		rest, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		return process.Prefix(p.env, event.Get(nameTok.Value), rest), nil
	}
	return p.parsePrimary()
}

// parsePrimary handles STOP, SKIP, parenthesised subexpressions, the
// replicated operator forms `op{ P, Q, ... }`, and process name references
// (with the optional `@N` debug suffix).
func (p *Parser) parsePrimary() (process.Process, error) {
	tok := p.cur()
	switch tok.Type {
	case TokStop:
		p.advance()
		return process.Stop(p.env), nil
	case TokSkip:
		p.advance()
		return process.Skip(p.env), nil
	case TokLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	case TokExtChoice, TokIntChoice, TokInterleave:
		if p.peek(1).Type == TokLBrace {
			return p.parseReplicated(tok.Type)
		}
	case TokIdent:
		return p.parseReference()
	}
	return nil, p.unexpectedToken("a process expression")
}

// parseReplicated parses `op{ P, Q, ... }` for whichever op was already
// peeked at by parsePrimary.
func (p *Parser) parseReplicated(op TokenType) (process.Process, error) {
	p.advance() // operator
	if _, err := p.expect(TokLBrace, "{"); err != nil {
		return nil, err
	}

	var members []process.Process
	if p.cur().Type != TokRBrace {
		for {
			m, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
			if p.cur().Type != TokComma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(TokRBrace, "}"); err != nil {
		return nil, err
	}

	switch op {
	case TokExtChoice:
		return process.ExternalChoice(p.env, process.NewSet(members...)), nil
	case TokIntChoice:
		return process.InternalChoice(p.env, process.NewSet(members...)), nil
	case TokInterleave:
		return process.Interleave(p.env, process.NewBag(members...)), nil
	}
	return nil, p.unexpectedToken("a replicated operator")
}

// parseReference resolves a bare identifier as a previously let-bound
// process name, honoring the `X@N` debug form that addresses a target by
// scope tag instead of lexical scope.
func (p *Parser) parseReference() (process.Process, error) {
	nameTok := p.advance()

	if p.cur().Type == TokAt {
		p.advance()
		numTok, err := p.expect(TokNumber, "a scope id")
		if err != nil {
			return nil, err
		}
		tag, convErr := strconv.ParseUint(numTok.Value, 10, 64)
		if convErr != nil {
			return nil, p.errorAt(numTok, herrors.KindUnexpectedToken, "invalid scope id %q", numTok.Value)
		}
		scope, ok := p.scopesByTag[tag]
		if !ok {
			return nil, p.errorAt(numTok, herrors.KindUndefinedName, "no scope with id %d is in scope here", tag)
		}
		return scope.Target(nameTok.Value), nil
	}

	proc, ok := p.names[nameTok.Value]
	if !ok {
		return nil, p.undefinedName(nameTok)
	}
	return proc, nil
}

// parseLet parses `let X = P1 Y = P2 ... within Q`. Every bound name is
// pre-registered as a recursion target before any body is parsed, so
// bodies may refer to names defined later in the same block (mutual
// recursion) as freely as to names defined earlier.
func (p *Parser) parseLet() (process.Process, error) {
	p.advance() // let

	names, err := p.scanBindingNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, p.unexpectedToken("at least one binding (name = process)")
	}

	scope := process.OpenScope(p.env)
	p.scopesByTag[scope.Tag()] = scope
	p.allScopes = append(p.allScopes, scope)

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n.name] {
			return nil, p.redefinedName(n.tok)
		}
		seen[n.name] = true
		if _, exists := p.names[n.name]; exists {
			return nil, p.redefinedName(n.tok)
		}
		target := scope.Target(n.name)
		p.names[n.name] = target
	}

	for range names {
		nameTok, err := p.expect(TokIdent, "a process name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokEquals, "="); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		scope.Fill(nameTok.Value, body)
	}

	if _, err := p.expect(TokWithin, "within"); err != nil {
		return nil, err
	}
	return p.parseExpr()
}

// scanBindingNames looks ahead from the current position (just past `let`)
// to collect every `name =` pair at this let block's own nesting level,
// without parsing any bodies. Nested let/within pairs and bracketed groups
// are skipped over by depth so an inner block's own names and its own
// `within` are never mistaken for this block's.
func (p *Parser) scanBindingNames() ([]bindingName, error) {
	var names []bindingName
	idx := p.pos
	depth := 0
	letDepth := 0

	for {
		if idx >= len(p.tokens) {
			return nil, p.unexpectedToken("within")
		}
		t := p.tokens[idx]

		switch t.Type {
		case TokEOF:
			return nil, p.errorAt(t, herrors.KindUnexpectedToken, "unexpected end of input inside a let block")
		case TokLet:
			letDepth++
			idx++
			continue
		case TokWithin:
			if letDepth == 0 {
				return names, nil
			}
			letDepth--
			idx++
			continue
		case TokLParen, TokLBrace:
			depth++
		case TokRParen, TokRBrace:
			depth--
		}

		if depth == 0 && letDepth == 0 && t.Type == TokIdent && idx+1 < len(p.tokens) && p.tokens[idx+1].Type == TokEquals {
			names = append(names, bindingName{name: t.Value, tok: t})
			idx += 2
			continue
		}
		idx++
	}
}
