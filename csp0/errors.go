package csp0

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hst-go/hst/internal/herrors"
)

// errorAt builds a *herrors.Error positioned at tok. Every parser failure
// path goes through one of these helpers so a caller never sees a bare
// error string for a bad CSP0 program.
func (p *Parser) errorAt(tok Token, kind herrors.Kind, format string, args ...interface{}) error {
	return herrors.New(kind, tok.Line, tok.Column, format, args...)
}

func (p *Parser) unexpectedToken(expected string) error {
	tok := p.cur()
	return p.errorAt(tok, herrors.KindUnexpectedToken, "expected %s, got %s", expected, tok.Type)
}

// undefinedName reports a reference to a process name that was never
// let-bound. When another bound name is a close fuzzy match, it is
// suggested in the message, mirroring the teacher's own
// findClosestMatch/fuzzy.RankFindFold "did you mean" UX for an unresolved
// target name.
func (p *Parser) undefinedName(tok Token) error {
	candidates := make([]string, 0, len(p.names))
	for name := range p.names {
		candidates = append(candidates, name)
	}
	if closest := closestName(tok.Value, candidates); closest != "" {
		return p.errorAt(tok, herrors.KindUndefinedName, "undefined identifier %q (did you mean %q?)", tok.Value, closest)
	}
	return p.errorAt(tok, herrors.KindUndefinedName, "undefined identifier %q", tok.Value)
}

// closestName finds the best fuzzy match for target among candidates, or
// "" if there are no candidates or none rank.
func closestName(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		return ranks[0].Target
	}
	return ""
}

func (p *Parser) redefinedName(tok Token) error {
	return p.errorAt(tok, herrors.KindRedefinedName, "process %q is already defined", tok.Value)
}

func (p *Parser) unfilledScope(tok Token, unfilled int) error {
	return p.errorAt(tok, herrors.KindUnfilledScope, "%d name(s) referenced but never defined in this let block", unfilled)
}
