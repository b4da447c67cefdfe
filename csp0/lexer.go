// Package csp0 tokenizes and parses the CSP0 textual syntax into
// process.Process values. It is the one caller of the process package's
// constructors from text: the core algebra never imports this package, so a
// change to the concrete grammar never touches the semantic engine.
package csp0

import (
	"unicode/utf8"

	"github.com/hst-go/hst/internal/herrors"
)

var keywords = map[string]TokenType{
	"STOP":   TokStop,
	"SKIP":   TokSkip,
	"let":    TokLet,
	"within": TokWithin,
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || b == '.' || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOperatorRune(r rune) bool {
	switch r {
	case '→', '□', '⊓', '⫴', '⟨', '⟩':
		return true
	}
	return false
}

// Lexer scans CSP0 source bytes into a token stream. Identifiers are
// accepted as raw UTF-8 byte sequences without validation, per the
// identifier alphabet rule: only the ASCII start/continuation set is
// actually checked, everything non-ASCII rides along unless it spells one
// of the reserved operator runes.
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

// NewLexer returns a Lexer over src, ready to scan from the beginning.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize scans the entire source, returning every token up to and
// including a trailing TokEOF, or the first lex error encountered.
func (l *Lexer) Tokenize() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == TokEOF {
			return toks, nil
		}
	}
}

func (l *Lexer) peekByteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isWhitespace(l.src[l.pos]) {
		l.advance()
	}
}

func (l *Lexer) next() (Token, error) {
	l.skipWhitespace()
	line, col := l.line, l.col
	if l.pos >= len(l.src) {
		return Token{Type: TokEOF, Line: line, Column: col}, nil
	}

	b := l.src[l.pos]
	switch {
	case isIdentStart(b):
		return l.scanIdent(line, col), nil
	case isDigit(b):
		return l.scanNumber(line, col), nil
	}

	switch b {
	case '(':
		l.advance()
		return Token{Type: TokLParen, Value: "(", Line: line, Column: col}, nil
	case ')':
		l.advance()
		return Token{Type: TokRParen, Value: ")", Line: line, Column: col}, nil
	case '{':
		l.advance()
		return Token{Type: TokLBrace, Value: "{", Line: line, Column: col}, nil
	case '}':
		l.advance()
		return Token{Type: TokRBrace, Value: "}", Line: line, Column: col}, nil
	case ',':
		l.advance()
		return Token{Type: TokComma, Value: ",", Line: line, Column: col}, nil
	case ';':
		l.advance()
		return Token{Type: TokSemi, Value: ";", Line: line, Column: col}, nil
	case '=':
		l.advance()
		return Token{Type: TokEquals, Value: "=", Line: line, Column: col}, nil
	case '@':
		l.advance()
		return Token{Type: TokAt, Value: "@", Line: line, Column: col}, nil
	case '<':
		l.advance()
		return Token{Type: TokLAngle, Value: "<", Line: line, Column: col}, nil
	case '>':
		l.advance()
		return Token{Type: TokRAngle, Value: ">", Line: line, Column: col}, nil
	case '-':
		if l.peekByteAt(1) == '>' {
			l.advanceN(2)
			return Token{Type: TokArrow, Value: "->", Line: line, Column: col}, nil
		}
	case '[':
		if l.peekByteAt(1) == ']' {
			l.advanceN(2)
			return Token{Type: TokExtChoice, Value: "[]", Line: line, Column: col}, nil
		}
	case '|':
		if l.peekByteAt(1) == '~' && l.peekByteAt(2) == '|' {
			l.advanceN(3)
			return Token{Type: TokIntChoice, Value: "|~|", Line: line, Column: col}, nil
		}
		if l.peekByteAt(1) == '|' && l.peekByteAt(2) == '|' {
			l.advanceN(3)
			return Token{Type: TokInterleave, Value: "|||", Line: line, Column: col}, nil
		}
	}

	if b >= 0x80 {
		r, size := utf8.DecodeRune(l.src[l.pos:])
		switch r {
		case '→':
			l.advanceN(size)
			return Token{Type: TokArrow, Value: "→", Line: line, Column: col}, nil
		case '□':
			l.advanceN(size)
			return Token{Type: TokExtChoice, Value: "□", Line: line, Column: col}, nil
		case '⊓':
			l.advanceN(size)
			return Token{Type: TokIntChoice, Value: "⊓", Line: line, Column: col}, nil
		case '⫴':
			l.advanceN(size)
			return Token{Type: TokInterleave, Value: "⫴", Line: line, Column: col}, nil
		case '⟨':
			l.advanceN(size)
			return Token{Type: TokLAngle, Value: "⟨", Line: line, Column: col}, nil
		case '⟩':
			l.advanceN(size)
			return Token{Type: TokRAngle, Value: "⟩", Line: line, Column: col}, nil
		}
		return Token{}, herrors.New(herrors.KindLex, line, col, "unexpected character %q", r)
	}

	return Token{}, herrors.New(herrors.KindLex, line, col, "unexpected character %q", b)
}

func (l *Lexer) scanIdent(line, col int) Token {
	start := l.pos
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if isIdentCont(b) {
			l.advance()
			continue
		}
		if b >= 0x80 {
			r, size := utf8.DecodeRune(l.src[l.pos:])
			if isOperatorRune(r) {
				break
			}
			l.advanceN(size)
			continue
		}
		break
	}
	text := string(l.src[start:l.pos])
	if kw, ok := keywords[text]; ok {
		return Token{Type: kw, Value: text, Line: line, Column: col}
	}
	return Token{Type: TokIdent, Value: text, Line: line, Column: col}
}

func (l *Lexer) scanNumber(line, col int) Token {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance()
	}
	return Token{Type: TokNumber, Value: string(l.src[start:l.pos]), Line: line, Column: col}
}
