package ucl

import "strconv"

// Parser builds a Value tree from source text (spec §4.4). Unlike Scanner,
// a Parser owns the hook set consulted by both stages: NumberSuffixHook is
// threaded down into the Scanner it drives, while StringPostProcessHook and
// ValidationHook are invoked here as each value is reduced.
type Parser struct {
	s        *Scanner
	resolver Resolver
	hooks    *hookSet
	warnings []Warning
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser)

// WithResolver sets the Resolver consulted for $VAR / ${VAR} / ${VAR:-def}
// expansion in JSON-style and heredoc strings.
func WithResolver(r Resolver) ParserOption {
	return func(p *Parser) { p.resolver = r }
}

// WithVariables is a convenience over WithResolver for a fixed variable set.
func WithVariables(vars map[string]string) ParserOption {
	return func(p *Parser) { p.resolver = EnvResolver(vars) }
}

// WithValidationHooks registers ValidationHooks, run in registration order
// against every (key path, value) pair as it is reduced.
func WithValidationHooks(hooks ...ValidationHook) ParserOption {
	return func(p *Parser) { p.hooks.validation = append(p.hooks.validation, hooks...) }
}

// WithStringPostProcessHooks registers StringPostProcessHooks, run in
// registration order on every materialized string.
func WithStringPostProcessHooks(hooks ...StringPostProcessHook) ParserOption {
	return func(p *Parser) { p.hooks.stringPost = append(p.hooks.stringPost, hooks...) }
}

// WithNumberSuffixHook registers NumberSuffixHooks, consulted by the
// underlying Scanner before the built-in time/size suffix tables.
func WithNumberSuffixHook(hooks ...NumberSuffixHook) ParserOption {
	return func(p *Parser) { p.hooks.numberSuffix = append(p.hooks.numberSuffix, hooks...) }
}

// NewParser builds a Parser over src.
func NewParser(src string, opts ...ParserOption) *Parser {
	p := &Parser{hooks: &hookSet{}}
	p.s = NewScanner(src)
	p.s.hooks = p.hooks
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Warnings returns the non-fatal diagnostics collected during Parse. It is
// only meaningful after Parse has returned.
func (p *Parser) Warnings() []Warning { return p.warnings }

// Parse consumes the entire input and returns the root object. A Parser
// must not be reused after Parse returns an error.
func (p *Parser) Parse() (*Value, error) {
	root := NewObjectValue()
	if err := p.parseStatements(root.Object, nil); err != nil {
		return nil, err
	}
	tok, err := p.s.NextToken()
	if err != nil {
		return nil, err
	}
	if tok.Kind != EOF {
		return nil, newParseError(tok.Span, "unexpected trailing %s", tok.Kind)
	}
	return root, nil
}

// parseStatements reads key/value statements until RBrace or EOF, which it
// does not consume; the caller is responsible for that token.
func (p *Parser) parseStatements(obj *Object, path []string) error {
	for {
		if err := p.skipSeparators(); err != nil {
			return err
		}
		tok, err := p.s.PeekToken(1)
		if err != nil {
			return err
		}
		if tok.Kind == EOF || tok.Kind == RBrace {
			return nil
		}
		key, val, err := p.parseStatement(path)
		if err != nil {
			return err
		}
		obj.Coalesce(key, val)
		if verr := p.hooks.runValidation(append(path, key), val); verr != nil {
			return verr
		}
	}
}

func (p *Parser) skipSeparators() error {
	for {
		tok, err := p.s.PeekToken(1)
		if err != nil {
			return err
		}
		if tok.Kind == Newline || tok.Kind == Comma || tok.Kind == Semicolon {
			p.s.NextToken()
			continue
		}
		return nil
	}
}

func (p *Parser) expect(kind Kind) error {
	tok, err := p.s.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return newParseError(tok.Span, "expected %s, got %s", kind, tok.Kind)
	}
	return nil
}

// readKey reads a key name. Spec §4.4 accepts an identifier, a string
// (decoded, expanded if JSON/heredoc-quoted), or one of the bareword
// literals (true/false/null/yes/no/on/off) as a key, since those are
// otherwise indistinguishable from identifiers at the byte level.
func (p *Parser) readKey() (string, error) {
	tok, err := p.s.NextToken()
	if err != nil {
		return "", err
	}
	switch tok.Kind {
	case Identifier, Boolean, Null:
		return tok.Text, nil
	case StringTok:
		return p.materializeString(tok), nil
	default:
		return "", newParseError(tok.Span, "expected key, got %s", tok.Kind)
	}
}

// parseStatement parses one key plus whatever follows it: an explicit
// `= value` / `: value`, an explicit `{ ... }` / `[ ... ]`, an NGINX-style
// nested implicit `key discriminator { ... }`, a plain implicit `key
// value`, or a bare flag (spec §4.4 Key forms, Syntax-style detection).
func (p *Parser) parseStatement(path []string) (string, *Value, error) {
	key, err := p.readKey()
	if err != nil {
		return "", nil, err
	}
	tok, err := p.s.PeekToken(1)
	if err != nil {
		return "", nil, err
	}
	switch tok.Kind {
	case Equals, Colon:
		p.s.NextToken()
		val, err := p.parseValue(append(path, key))
		return key, val, err
	case LBrace:
		p.s.NextToken()
		inner := NewObjectValue()
		if err := p.parseStatements(inner.Object, append(path, key)); err != nil {
			return "", nil, err
		}
		if err := p.expect(RBrace); err != nil {
			return "", nil, err
		}
		return key, inner, nil
	case LBracket:
		p.s.NextToken()
		arr, err := p.parseArrayBody(append(path, key))
		if err != nil {
			return "", nil, err
		}
		return key, ArrayValue(arr), nil
	case Newline, Comma, Semicolon, EOF, RBrace:
		return key, BoolValue(true), nil
	default:
		if !isSimpleAtomKind(tok.Kind) {
			val, err := p.parseValue(append(path, key))
			return key, val, err
		}
		tok2, err := p.s.PeekToken(2)
		if err != nil {
			return "", nil, err
		}
		if tok2.Kind != LBrace {
			val, err := p.parseValue(append(path, key))
			return key, val, err
		}
		p.s.NextToken() // discriminator atom
		disc, err := p.atomText(tok)
		if err != nil {
			return "", nil, err
		}
		p.s.NextToken() // '{'
		inner := NewObjectValue()
		if err := p.parseStatements(inner.Object, append(path, key, disc)); err != nil {
			return "", nil, err
		}
		if err := p.expect(RBrace); err != nil {
			return "", nil, err
		}
		nested := NewObjectValue()
		nested.Object.Set(disc, inner)
		return key, nested, nil
	}
}

func isSimpleAtomKind(k Kind) bool {
	switch k {
	case Identifier, StringTok, Boolean, Null, Integer, Float, Time:
		return true
	default:
		return false
	}
}

// atomText renders an already-peeked scalar token as plain text, used for
// the discriminator atom of an NGINX-style nested implicit statement.
func (p *Parser) atomText(tok Token) (string, error) {
	switch tok.Kind {
	case StringTok:
		return p.materializeString(tok), nil
	case Identifier:
		return tok.Text, nil
	case Boolean:
		if tok.BoolVal {
			return "true", nil
		}
		return "false", nil
	case Null:
		return "null", nil
	case Integer:
		return strconv.FormatInt(tok.IntVal, 10), nil
	case Float, Time:
		return formatFloat(tok.FloatVal), nil
	default:
		return "", newParseError(tok.Span, "unexpected %s as discriminator", tok.Kind)
	}
}

// parseValue parses a single value in value position: a scalar, a
// parenthesis-free run of adjacent string literals (spec's string
// concatenation extension), or a nested object/array.
func (p *Parser) parseValue(path []string) (*Value, error) {
	tok, err := p.s.NextToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case StringTok:
		s := p.materializeString(tok)
		for {
			next, err := p.s.PeekToken(1)
			if err != nil {
				return nil, err
			}
			if next.Kind != StringTok {
				break
			}
			p.s.NextToken()
			s += p.materializeString(next)
		}
		return StringValue(s), nil
	case Integer:
		return IntValue(tok.IntVal), nil
	case Float:
		return FloatValue(tok.FloatVal), nil
	case Time:
		return TimeValue(tok.FloatVal), nil
	case Boolean:
		return BoolValue(tok.BoolVal), nil
	case Null:
		return NullValue(), nil
	case Identifier:
		return StringValue(p.hooks.runStringPost(tok.Text)), nil
	case LBrace:
		inner := NewObjectValue()
		if err := p.parseStatements(inner.Object, path); err != nil {
			return nil, err
		}
		if err := p.expect(RBrace); err != nil {
			return nil, err
		}
		return inner, nil
	case LBracket:
		arr, err := p.parseArrayBody(path)
		if err != nil {
			return nil, err
		}
		return ArrayValue(arr), nil
	default:
		return nil, newParseError(tok.Span, "unexpected %s in value position", tok.Kind)
	}
}

func (p *Parser) parseArrayBody(path []string) ([]*Value, error) {
	var arr []*Value
	for {
		if err := p.skipSeparators(); err != nil {
			return nil, err
		}
		tok, err := p.s.PeekToken(1)
		if err != nil {
			return nil, err
		}
		if tok.Kind == RBracket {
			p.s.NextToken()
			return arr, nil
		}
		if tok.Kind == EOF {
			return nil, newParseError(tok.Span, "unterminated array")
		}
		val, err := p.parseValue(path)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
}

// materializeString decodes-then-expands a string token: variable
// expansion only applies to JSON-style and heredoc strings, never to raw
// (single-quoted) strings (spec §4.3), and StringPostProcessHooks run last
// regardless of dialect.
func (p *Parser) materializeString(tok Token) string {
	s := tok.Text
	if tok.Dialect == DialectJSON || tok.Dialect == DialectHeredoc {
		e := &expander{resolver: p.resolver, warnings: &p.warnings}
		s = e.expand(s, tok.Span)
	}
	return p.hooks.runStringPost(s)
}
