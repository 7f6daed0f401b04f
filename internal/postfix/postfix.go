// Package postfix reorders a token stream from infix to postfix (Reverse
// Polish) order with the classic shunting-yard stack discipline.
//
// Convert is total and performs no validation: an unbalanced or otherwise
// malformed expression passes through and surfaces later as an evaluator
// error. In particular a close paren with no matching open simply drains the
// operator stack, and an unmatched open paren left at end of input is
// discarded, so "(1+2" converts as if the paren were absent.
package postfix

import "github.com/calvess/dateexpr/internal/token"

// precedence orders operators for the conversion. All binary operators are
// left-associative; unary minus binds tightest.
var precedence = map[token.Kind]int{
	token.Plus:       1,
	token.Minus:      1,
	token.Star:       2,
	token.Slash:      2,
	token.UnaryMinus: 3,
}

// Convert reorders tokens into postfix order.
func Convert(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	var ops []token.Token

	for _, t := range tokens {
		switch {
		case t.IsOperand():
			out = append(out, t)
		case t.Kind == token.LeftParen:
			ops = append(ops, t)
		case t.Kind == token.RightParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != token.LeftParen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1] // discard the matching "("
			}
		default:
			for len(ops) > 0 && ops[len(ops)-1].Kind != token.LeftParen &&
				precedence[ops[len(ops)-1].Kind] >= precedence[t.Kind] {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == token.LeftParen {
			continue // unmatched "(" tolerated
		}
		out = append(out, top)
	}
	return out
}
