package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enzoblain/Cryptography/cryptography/u256"
	apperrors "github.com/enzoblain/Cryptography/internal/errors"
)

const (
	policyChecked     = "checked"
	policyWrapping    = "wrapping"
	policyOverflowing = "overflowing"
	policySaturating  = "saturating"
)

// arithOp groups the four overflow policies of one operation.
type arithOp struct {
	checked     func(x, y u256.U256) (u256.U256, bool)
	wrapping    func(x, y u256.U256) u256.U256
	overflowing func(x, y u256.U256) (u256.U256, bool)
	saturating  func(x, y u256.U256) u256.U256
}

var arithOps = map[string]arithOp{
	"add": {u256.U256.CheckedAdd, u256.U256.WrappingAdd, u256.U256.OverflowingAdd, u256.U256.SaturatingAdd},
	"sub": {u256.U256.CheckedSub, u256.U256.WrappingSub, u256.U256.OverflowingSub, u256.U256.SaturatingSub},
	"mul": {u256.U256.CheckedMul, u256.U256.WrappingMul, u256.U256.OverflowingMul, u256.U256.SaturatingMul},
}

var bitOps = map[string]func(x, y u256.U256) u256.U256{
	"and": u256.U256.And,
	"or":  u256.U256.Or,
	"xor": u256.U256.Xor,
	"shl": func(x, n u256.U256) u256.U256 { return x.ShiftLeft(shiftAmount(n)) },
	"shr": func(x, n u256.U256) u256.U256 { return x.ShiftRight(shiftAmount(n)) },
}

func shiftAmount(n u256.U256) uint {
	v, ok := n.Uint64()
	if !ok || v > 256 {
		return 256
	}
	return uint(v)
}

func newU256Cmd(a *app) *cobra.Command {
	var (
		policy string
		asHex  bool
	)

	cmd := &cobra.Command{
		Use:   "u256 <op> <a> [b]",
		Short: "Evaluate a 256-bit integer operation",
		Long: `Evaluate a 256-bit unsigned integer operation.

Operands are decimal, or hexadecimal with a 0x prefix.
Operations: add sub mul div rem cmp and or xor shl shr not.
add, sub and mul honour --policy; div and rem accept checked or wrapping.`,
		Args: usageArgs(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := strings.ToLower(args[0])
			operands := make([]u256.U256, 0, 2)
			for _, s := range args[1:] {
				v, err := u256.Parse(s)
				if err != nil {
					return fmt.Errorf("%w: %v", apperrors.ErrUsage, err)
				}
				operands = append(operands, v)
			}
			a.logger.Debug("evaluating", "op", op, "policy", policy, "operands", len(operands))

			res, err := evaluate(op, policy, operands)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.format(asHex))
			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", policyChecked, "overflow policy: checked, wrapping, overflowing or saturating")
	cmd.Flags().BoolVar(&asHex, "hex", false, "print the result in hex")
	return cmd
}

type result struct {
	value    u256.U256
	overflow bool
	cmp      *int
}

func (r result) format(asHex bool) string {
	if r.cmp != nil {
		return fmt.Sprint(*r.cmp)
	}
	s := r.value.Decimal()
	if asHex {
		s = r.value.Hex()
	}
	if r.overflow {
		s += " overflow"
	}
	return s
}

func evaluate(op, policy string, operands []u256.U256) (result, error) {
	if op == "not" {
		if len(operands) != 1 {
			return result{}, fmt.Errorf("%w: not takes one operand", apperrors.ErrUsage)
		}
		return result{value: operands[0].Not()}, nil
	}
	if len(operands) != 2 {
		return result{}, fmt.Errorf("%w: %s takes two operands", apperrors.ErrUsage, op)
	}
	x, y := operands[0], operands[1]

	if ar, ok := arithOps[op]; ok {
		switch policy {
		case policyChecked:
			v, ok := ar.checked(x, y)
			if !ok {
				return result{}, fmt.Errorf("%w: %s overflows 256 bits", apperrors.ErrArithmetic, op)
			}
			return result{value: v}, nil
		case policyWrapping:
			return result{value: ar.wrapping(x, y)}, nil
		case policyOverflowing:
			v, overflow := ar.overflowing(x, y)
			return result{value: v, overflow: overflow}, nil
		case policySaturating:
			return result{value: ar.saturating(x, y)}, nil
		}
		return result{}, fmt.Errorf("%w: unknown policy %q", apperrors.ErrUsage, policy)
	}

	if fn, ok := bitOps[op]; ok {
		return result{value: fn(x, y)}, nil
	}

	switch op {
	case "div", "rem":
		if policy != policyChecked && policy != policyWrapping {
			return result{}, fmt.Errorf("%w: %s does not support policy %q", apperrors.ErrUsage, op, policy)
		}
		q, r, err := x.DivRem(y)
		if err != nil {
			return result{}, fmt.Errorf("%w: %w", apperrors.ErrArithmetic, err)
		}
		if op == "div" {
			return result{value: q}, nil
		}
		return result{value: r}, nil
	case "cmp":
		c := x.Cmp(y)
		return result{cmp: &c}, nil
	}
	return result{}, fmt.Errorf("%w: unknown operation %q", apperrors.ErrUsage, op)
}
