package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type calculateArgs struct {
	Expression string `json:"expression"`
}

// safeExpression is the allow-list for arithmetic input. Anything outside
// digits, whitespace, parentheses and the four basic operators is rejected
// before evaluation, so identifiers can never reach the parser.
var safeExpression = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)

// Calculate evaluates a basic arithmetic expression with standard operator
// precedence and real-valued division.
func Calculate(_ context.Context, args json.RawMessage) (Result, error) {
	var a calculateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return Result{}, err
	}

	if !safeExpression.MatchString(a.Expression) {
		return Errorf("Invalid expression: only numbers and basic operators (+, -, *, /, parentheses) are allowed"), nil
	}

	value, err := evalExpression(a.Expression)
	if err != nil {
		return Errorf("Error calculating '%s': %v", a.Expression, err), nil
	}
	return Textf("%s = %s", a.Expression, formatNumber(value)), nil
}

// formatNumber renders integral results without a trailing decimal part,
// so "2 + 3 * 4" yields "14" rather than "14.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// evalExpression parses and evaluates the expression with a small
// recursive-descent parser. Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = { "+" | "-" } factor
//	factor = number | "(" expr ")"
func evalExpression(input string) (float64, error) {
	p := &exprParser{input: input}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		if p.input[p.pos] == ')' {
			return 0, errors.New("unbalanced parentheses")
		}
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}

// peek returns the next significant byte, or 0 at end of input.
func (p *exprParser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, errors.New("division by zero")
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	case '+':
		p.pos++
		return p.parseUnary()
	default:
		return p.parseFactor()
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, errors.New("unbalanced parentheses")
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9', c == '.':
		return p.parseNumber()
	case c == 0:
		return 0, errors.New("unexpected end of expression")
	default:
		return 0, fmt.Errorf("unexpected character %q at position %d", c, p.pos)
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	lit := p.input[start:p.pos]
	if strings.Count(lit, ".") > 1 || lit == "." {
		return 0, fmt.Errorf("invalid number %q", lit)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", lit)
	}
	return v, nil
}
