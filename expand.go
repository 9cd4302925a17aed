package ucl

import "strings"

// Resolver looks up a variable's replacement text. It returns ok=false for
// an unresolved name, which is not an error (spec §4.3): the original
// `$NAME` text is preserved verbatim in the output.
type Resolver interface {
	Resolve(name string) (value string, ok bool)
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(name string) (string, bool)

func (f ResolverFunc) Resolve(name string) (string, bool) { return f(name) }

// EnvResolver resolves against a fixed map, the common case of a
// caller-supplied variable set (spec §4.3 examples use exactly this shape).
type EnvResolver map[string]string

func (m EnvResolver) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ChainResolver tries each Resolver in order, returning the first hit.
type ChainResolver []Resolver

func (c ChainResolver) Resolve(name string) (string, bool) {
	for _, r := range c {
		if v, ok := r.Resolve(name); ok {
			return v, true
		}
	}
	return "", false
}

// expander runs the variable substitution of spec §4.3 over a single
// materialized string, detecting self-referential cycles along the way. It
// works in one pass, appending into a strings.Builder sized to the source;
// the expanded length is not computed ahead of the copy.
type expander struct {
	resolver Resolver
	warnings *[]Warning
	stack    []string
}

// expand substitutes $VAR / ${VAR} / ${VAR:-default} / bare trailing $ forms
// in s. span is the position of s in the original source, used only to
// attribute any CircularReference warning.
func (e *expander) expand(s string, span Span) string {
	out, _ := e.expandCycle(s, span)
	return out
}

// expandCycle is expand's internal form: it additionally reports whether a
// circular reference was encountered anywhere in s's expansion, so that an
// enclosing ${NAME:-DEFAULT} frame can discard a cycle-tainted partial
// result and substitute DEFAULT instead (spec §4.3/§4.4 worked example:
// "cycle detected during resolution, default wins").
func (e *expander) expandCycle(s string, span Span) (string, bool) {
	if !strings.ContainsRune(s, '$') {
		return s, false
	}
	var b strings.Builder
	b.Grow(len(s))
	cycle := false
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			// A lone trailing '$' is literal.
			b.WriteByte('$')
			i++
			continue
		}
		if s[i+1] == '$' {
			// "$$" collapses to a single literal '$' (spec §4.3).
			b.WriteByte('$')
			i += 2
			continue
		}
		if s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				// No closing brace: treat the rest as literal, per the
				// "unresolved is not an error" stance.
				b.WriteString(s[i:])
				break
			}
			inner := s[i+2 : i+2+end]
			raw := s[i : i+2+end+1]
			name, def, hasDefault := splitDefault(inner)
			v, c := e.resolve(name, def, hasDefault, raw, span)
			b.WriteString(v)
			cycle = cycle || c
			i += 2 + end + 1
			continue
		}
		if isVarNameStart(s[i+1]) {
			j := i + 1
			for j < len(s) && isVarNameByte(s[j]) {
				j++
			}
			name := s[i+1 : j]
			v, c := e.resolve(name, "", false, s[i:j], span)
			b.WriteString(v)
			cycle = cycle || c
			i = j
			continue
		}
		// '$' not followed by '{' or a name character is literal.
		b.WriteByte('$')
		i++
	}
	return b.String(), cycle
}

// resolve looks up name, returning its (possibly recursively expanded)
// replacement and whether a circular reference was encountered while doing
// so. A cycle discovered while expanding name's own replacement text is
// absorbed here, at the frame that knows whether a default applies: with a
// default, the cycle is invisible to the caller (default wins, no residual
// "${A}" fragment survives); without one, the cycle propagates up so that
// the original unresolved text is preserved all the way to the root.
func (e *expander) resolve(name, def string, hasDefault bool, raw string, span Span) (string, bool) {
	for _, s := range e.stack {
		if s == name {
			if e.warnings != nil {
				*e.warnings = append(*e.warnings, Warning{
					Kind: CircularReference,
					Span: span,
					Msg:  "circular reference to variable " + name,
				})
			}
			return raw, true
		}
	}
	if e.resolver != nil {
		if v, ok := e.resolver.Resolve(name); ok {
			e.stack = append(e.stack, name)
			expanded, childCycle := e.expandCycle(v, span)
			e.stack = e.stack[:len(e.stack)-1]
			if childCycle {
				if hasDefault {
					d, _ := e.expandCycle(def, span)
					return d, false
				}
				return expanded, true
			}
			return expanded, false
		}
	}
	if hasDefault {
		d, _ := e.expandCycle(def, span)
		return d, false
	}
	return raw, false
}

// splitDefault splits the ${NAME:-DEFAULT} inner text on the first ":-".
func splitDefault(inner string) (name, def string, hasDefault bool) {
	if idx := strings.Index(inner, ":-"); idx >= 0 {
		return inner[:idx], inner[idx+2:], true
	}
	return inner, "", false
}

func isVarNameStart(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isVarNameByte(b byte) bool {
	return isVarNameStart(b) || isDigit(b)
}
