package cssclamp

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssclamp/internal/units"
)

// Expression is a parsed clamp(<min>rem, <intercept>rem + <slope>vw, <max>rem)
type Expression struct {
	Min       float64 // rem
	Intercept float64 // rem
	Slope     float64 // vw coefficient
	Max       float64 // rem
}

// Breakpoints are the viewport widths, in px, at which the preferred value
// meets each bound
type Breakpoints struct {
	MinWidth float64 // preferred value equals Min
	MaxWidth float64 // preferred value equals Max
}

type token struct {
	tt   css.TokenType
	text string
}

// ParseExpression reads an expression in the form produced by Clamp.
// Whitespace and comments between tokens are ignored.
func ParseExpression(expr string) (*Expression, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}

	p := &exprParser{tokens: tokens}
	e := &Expression{}

	if !p.function("clamp(") {
		return nil, fmt.Errorf("%w: expected clamp(", ErrInvalidExpression)
	}
	if e.Min, err = p.dimension(units.UnitRem, 1); err != nil {
		return nil, err
	}
	if err := p.expect(css.CommaToken); err != nil {
		return nil, err
	}
	if e.Intercept, err = p.dimension(units.UnitRem, 1); err != nil {
		return nil, err
	}

	// "+ 0.5vw", "- 0.5vw" or a bare signed dimension
	sign := 1.0
	if p.peek().tt == css.DelimToken {
		switch p.next().text {
		case "+":
		case "-":
			sign = -1
		default:
			return nil, fmt.Errorf("%w: expected + or - before the vw term", ErrInvalidExpression)
		}
	}
	if e.Slope, err = p.dimension("vw", sign); err != nil {
		return nil, err
	}
	if err := p.expect(css.CommaToken); err != nil {
		return nil, err
	}
	if e.Max, err = p.dimension(units.UnitRem, 1); err != nil {
		return nil, err
	}
	if err := p.expect(css.RightParenthesisToken); err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("%w: unexpected %q after closing parenthesis", ErrInvalidExpression, p.peek().text)
	}

	return e, nil
}

// Breakpoints returns the viewport widths where scaling starts and stops,
// given root as the px size of 1rem.
func (e *Expression) Breakpoints(root float64) (Breakpoints, error) {
	if e.Slope == 0 {
		return Breakpoints{}, ErrNoSlope
	}

	perRem := e.Slope / 100
	return Breakpoints{
		MinWidth: (e.Min - e.Intercept) / perRem * root,
		MaxWidth: (e.Max - e.Intercept) / perRem * root,
	}, nil
}

// String renders the expression back into clamp() form
func (e *Expression) String() string {
	return fmt.Sprintf("clamp(%srem, %srem + %svw, %srem)",
		units.Format(e.Min), units.Format(e.Intercept), units.Format(e.Slope), units.Format(e.Max))
}

func tokenize(expr string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInputString(expr))

	var tokens []token
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
			}
			return tokens, nil
		}
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}
		tokens = append(tokens, token{tt: tt, text: string(text)})
	}
}

type exprParser struct {
	tokens []token
	pos    int
}

func (p *exprParser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{tt: css.ErrorToken}
	}
	return p.tokens[p.pos]
}

func (p *exprParser) next() token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *exprParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *exprParser) function(name string) bool {
	t := p.next()
	return t.tt == css.FunctionToken && strings.EqualFold(t.text, name)
}

func (p *exprParser) expect(tt css.TokenType) error {
	if t := p.next(); t.tt != tt {
		return fmt.Errorf("%w: expected %s, got %q", ErrInvalidExpression, tt, t.text)
	}
	return nil
}

// dimension consumes a <number><unit> token with the given unit
func (p *exprParser) dimension(unit string, sign float64) (float64, error) {
	t := p.next()
	if t.tt != css.DimensionToken {
		return 0, fmt.Errorf("%w: expected a %s value, got %q", ErrInvalidExpression, unit, t.text)
	}

	q := units.Parse(t.text)
	if math.IsNaN(q.Magnitude) || !strings.EqualFold(q.Unit, unit) {
		return 0, fmt.Errorf("%w: expected unit %q, got %q", ErrInvalidExpression, unit, t.text)
	}
	return sign * q.Magnitude, nil
}
