package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strings"

	"github.com/syssam/enumext/schema/enum"
)

// Discriminant expressions are self-contained: integer literals combined
// with the basic arithmetic and bitwise binary operators, unary minus and
// bitwise complement, and parentheses. Cross-variant symbolic references are
// not supported. Every operation is evaluated at the width and signedness of
// the chosen integer type, with two's-complement truncation after each step,
// so `0x10 + 5` as u8 is 21 and `200 + 100` as u8 wraps to 44.

// evalDiscriminant parses and evaluates a discriminant expression at the
// given integer type.
func evalDiscriminant(expr string, t enum.IntType) (*big.Int, error) {
	node, err := parser.ParseExpr(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("malformed expression %q: %w", expr, err)
	}
	v, err := evalNode(node, t)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func evalNode(node ast.Expr, t enum.IntType) (*big.Int, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT {
			return nil, fmt.Errorf("unsupported literal %s", n.Value)
		}
		v := new(big.Int)
		if _, ok := v.SetString(n.Value, 0); !ok {
			return nil, fmt.Errorf("invalid integer literal %s", n.Value)
		}
		return truncate(v, t), nil
	case *ast.ParenExpr:
		return evalNode(n.X, t)
	case *ast.UnaryExpr:
		x, err := evalNode(n.X, t)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case token.SUB:
			return truncate(new(big.Int).Neg(x), t), nil
		case token.ADD:
			return x, nil
		case token.XOR:
			return truncate(new(big.Int).Not(x), t), nil
		default:
			return nil, fmt.Errorf("unsupported unary operator %s", n.Op)
		}
	case *ast.BinaryExpr:
		x, err := evalNode(n.X, t)
		if err != nil {
			return nil, err
		}
		y, err := evalNode(n.Y, t)
		if err != nil {
			return nil, err
		}
		return evalBinary(n.Op, x, y, t)
	case *ast.Ident:
		return nil, fmt.Errorf("symbolic reference %q is not supported in discriminant expressions", n.Name)
	default:
		return nil, fmt.Errorf("unsupported expression element %T", node)
	}
}

func evalBinary(op token.Token, x, y *big.Int, t enum.IntType) (*big.Int, error) {
	v := new(big.Int)
	switch op {
	case token.ADD:
		v.Add(x, y)
	case token.SUB:
		v.Sub(x, y)
	case token.MUL:
		v.Mul(x, y)
	case token.QUO:
		if y.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		v.Quo(x, y)
	case token.REM:
		if y.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		v.Rem(x, y)
	case token.AND:
		v.And(toUnsigned(x, t), toUnsigned(y, t))
	case token.OR:
		v.Or(toUnsigned(x, t), toUnsigned(y, t))
	case token.XOR:
		v.Xor(toUnsigned(x, t), toUnsigned(y, t))
	case token.SHL:
		n, err := shiftCount(y, t)
		if err != nil {
			return nil, err
		}
		v.Lsh(toUnsigned(x, t), n)
	case token.SHR:
		n, err := shiftCount(y, t)
		if err != nil {
			return nil, err
		}
		v.Rsh(toUnsigned(x, t), n)
	default:
		return nil, fmt.Errorf("unsupported operator %s", op)
	}
	return truncate(v, t), nil
}

// shiftCount validates a shift amount the way width-typed evaluation does:
// non-negative and strictly less than the type width.
func shiftCount(y *big.Int, t enum.IntType) (uint, error) {
	if y.Sign() < 0 || !y.IsUint64() || y.Uint64() >= uint64(t.Bits()) {
		return 0, fmt.Errorf("shift amount %s out of range for %s", y, t)
	}
	return uint(y.Uint64()), nil
}

// toUnsigned reinterprets the two's-complement bit pattern of v as an
// unsigned value of the type's width, so bitwise operations see the same
// bits regardless of sign.
func toUnsigned(v *big.Int, t enum.IntType) *big.Int {
	if v.Sign() >= 0 {
		return v
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(t.Bits()))
	return new(big.Int).Add(v, mod)
}

// truncate reduces v to the width and signedness of the integer type using
// two's-complement wrapping.
func truncate(v *big.Int, t enum.IntType) *big.Int {
	bits := uint(t.Bits())
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	r := new(big.Int).Mod(v, mod)
	if t.Signed() {
		half := new(big.Int).Lsh(big.NewInt(1), bits-1)
		if r.Cmp(half) >= 0 {
			r.Sub(r, mod)
		}
	}
	return r
}
