package csp0

import (
	"github.com/hst-go/hst/csp/event"
	"github.com/hst-go/hst/csp/process"
	"github.com/hst-go/hst/internal/herrors"
)

// ParseTrace lexes and parses a standalone trace literal — ⟨a, b, c⟩ or the
// ASCII spelling <a, b, c> — into a *process.Trace. A trace literal is its
// own grammar production (spec.md §6), never a process expression: this
// mirrors the original source's separate csp_load_trace_string entry point
// (original_source/src/csp0.c), distinct from csp_load_csp0_string, the
// process-expression loader ParseProgram/Parse implement above.
func ParseTrace(src []byte) (*process.Trace, error) {
	lex := NewLexer(src)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens, nil)
	t, err := p.parseTraceLiteral()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.unexpectedToken("end of input")
	}
	return t, nil
}

// parseTraceLiteral parses ⟨ e1, e2, ..., en ⟩ (or < e1, e2, ..., en >),
// including the empty trace ⟨⟩. The closing bracket must spell the same
// family (ASCII or Unicode) as the one that opened it, same as the
// original parser's "close" variable.
func (p *Parser) parseTraceLiteral() (*process.Trace, error) {
	open, err := p.expect(TokLAngle, "⟨ or <")
	if err != nil {
		return nil, err
	}
	want := closingBracket(open)

	if p.cur().Type == TokRAngle {
		return p.closeTrace(process.EmptyTrace(), want)
	}

	t := process.EmptyTrace()
	for {
		nameTok, err := p.expect(TokIdent, "an event name")
		if err != nil {
			return nil, err
		}
		t = process.Extend(t, event.Get(nameTok.Value))
		if p.cur().Type != TokComma {
			break
		}
		p.advance()
	}
	return p.closeTrace(t, want)
}

func closingBracket(open Token) string {
	if open.Value == "⟨" {
		return "⟩"
	}
	return ">"
}

func (p *Parser) closeTrace(t *process.Trace, want string) (*process.Trace, error) {
	tok := p.cur()
	if tok.Type != TokRAngle || tok.Value != want {
		return nil, p.errorAt(tok, herrors.KindUnexpectedToken, "expected closing %q for trace literal, got %s", want, tok.Type)
	}
	p.advance()
	return t, nil
}
