package scenario

import (
	"strconv"
	"strings"
)

// TemplateContext holds the values substituted into narrative templates.
// Zero numeric fields fall back to fixed defaults during interpolation, so a
// partially built context still interpolates deterministically.
type TemplateContext struct {
	Location string
	Target   string
	Victim   string
	Mystery  string
	Item     string
	Items    string
	Count    int
	Half     int
	Total    int
	Rounds   int
	Enemies  int
}

// Numeric defaults applied when the context leaves a field unset.
const (
	defaultCount  = 1
	defaultHalf   = 5
	defaultTotal  = 10
	defaultRounds = 10
)

// WithAmount returns a copy of the context with count/half/total derived from
// an objective's own target amount.
func (c TemplateContext) WithAmount(amount int) TemplateContext {
	if amount <= 0 {
		return c
	}
	c.Count = amount
	c.Half = (amount + 1) / 2
	c.Total = amount
	return c
}

func (c TemplateContext) lookup(name string) (string, bool) {
	switch name {
	case "location":
		return c.Location, true
	case "target":
		return c.Target, true
	case "victim":
		return c.Victim, true
	case "mystery":
		return c.Mystery, true
	case "item":
		return c.Item, true
	case "items":
		return c.Items, true
	case "count":
		return strconv.Itoa(orDefault(c.Count, defaultCount)), true
	case "half":
		return strconv.Itoa(orDefault(c.Half, defaultHalf)), true
	case "total":
		return strconv.Itoa(orDefault(c.Total, defaultTotal)), true
	case "rounds":
		return strconv.Itoa(orDefault(c.Rounds, defaultRounds)), true
	case "enemies":
		return strconv.Itoa(c.Enemies), true
	}
	return "", false
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// KnownPlaceholders lists every placeholder class the interpolator resolves.
// Pool loading rejects templates referencing anything else.
var KnownPlaceholders = []string{
	"location", "target", "victim", "mystery", "item", "items",
	"count", "half", "total", "rounds", "enemies",
}

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenPlaceholder
)

type token struct {
	kind tokenKind
	text string // literal text, or placeholder name without braces
}

// tokenize splits a template into literal runs and `{name}` placeholders.
// Malformed braces (no closing brace, empty name) stay literal.
func tokenize(template string) []token {
	var toks []token
	for len(template) > 0 {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			toks = append(toks, token{tokenLiteral, template})
			break
		}
		close := strings.IndexByte(template[open:], '}')
		if close < 0 {
			toks = append(toks, token{tokenLiteral, template})
			break
		}
		close += open
		name := template[open+1 : close]
		if name == "" || strings.ContainsAny(name, " {") {
			// Not a placeholder; keep scanning after the brace.
			toks = append(toks, token{tokenLiteral, template[:open+1]})
			template = template[open+1:]
			continue
		}
		if open > 0 {
			toks = append(toks, token{tokenLiteral, template[:open]})
		}
		toks = append(toks, token{tokenPlaceholder, name})
		template = template[close+1:]
	}
	return toks
}

// Interpolate substitutes every known placeholder with its context value in a
// single pass, so substituted values containing placeholder syntax are never
// re-substituted. Unknown placeholders pass through verbatim as an authoring
// signal.
func Interpolate(template string, ctx TemplateContext) string {
	if !strings.ContainsRune(template, '{') {
		return template
	}
	var b strings.Builder
	b.Grow(len(template))
	for _, tok := range tokenize(template) {
		if tok.kind == tokenLiteral {
			b.WriteString(tok.text)
			continue
		}
		if v, ok := ctx.lookup(tok.text); ok {
			b.WriteString(v)
		} else {
			b.WriteByte('{')
			b.WriteString(tok.text)
			b.WriteByte('}')
		}
	}
	return b.String()
}

// Placeholders returns the distinct placeholder names referenced by template,
// in order of first appearance.
func Placeholders(template string) []string {
	var names []string
	seen := map[string]bool{}
	for _, tok := range tokenize(template) {
		if tok.kind == tokenPlaceholder && !seen[tok.text] {
			seen[tok.text] = true
			names = append(names, tok.text)
		}
	}
	return names
}
