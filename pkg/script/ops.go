package script

import (
	"bytes"
	"math/big"

	"github.com/justinian336/bitcoin/internal/hash"
	"github.com/justinian336/bitcoin/pkg/secp256k1"
)

// opContext is the state an operation may touch: the data stack, the alt
// stack, the commands not yet executed (consumed by flow control) and the
// externally supplied sighash (consumed by signature checks).
type opContext struct {
	stack    *stack
	altStack *stack
	cmds     []Command
	z        *big.Int
}

// opFunc attempts one operation and reports success. A false return
// aborts the whole evaluation; it is never an engine error.
type opFunc func(ctx *opContext) bool

// opcodeTable is the process-wide dispatch table. It is built once here
// and never mutated afterwards.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() map[Opcode]opFunc {
	table := map[Opcode]opFunc{
		OpFalse:          opFalse,
		Op1Negate:        op1Negate,
		OpNop:            opNop,
		OpIf:             opIf(true),
		OpNotIf:          opIf(false),
		OpVerify:         opVerify,
		OpReturn:         opReturn,
		OpToAltStack:     opToAltStack,
		OpFromAltStack:   opFromAltStack,
		OpDrop:           opDrop,
		OpDup:            opDup,
		OpSwap:           opSwap,
		OpEqual:          opEqual,
		OpEqualVerify:    opEqualVerify,
		OpNot:            opNot,
		OpAdd:            opAdd,
		OpSub:            opSub,
		OpSha256:         opSha256,
		OpHash160:        opHash160,
		OpHash256:        opHash256,
		OpCheckSig:       opCheckSig,
		OpCheckSigVerify: opCheckSigVerify,
	}
	// OP_1 through OP_16 push their small-integer encodings.
	for op := OpTrue; op <= Op16; op++ {
		n := int64(op-OpTrue) + 1
		table[op] = func(ctx *opContext) bool {
			ctx.stack.push(EncodeNum(n))
			return true
		}
	}
	return table
}

func opFalse(ctx *opContext) bool {
	ctx.stack.push(EncodeNum(0))
	return true
}

func op1Negate(ctx *opContext) bool {
	ctx.stack.push(EncodeNum(-1))
	return true
}

func opNop(*opContext) bool { return true }

// opIf consumes the remaining commands up to the matching OP_ENDIF,
// keeping either the taken branch (before OP_ELSE) or the alternative,
// honoring nested conditionals. Without a matching OP_ENDIF the script
// is invalid.
func opIf(wantTrue bool) opFunc {
	return func(ctx *opContext) bool {
		cond, ok := ctx.stack.pop()
		if !ok {
			return false
		}
		taken := DecodeNum(cond) != 0
		if !wantTrue {
			taken = !taken
		}

		var trueBranch, falseBranch []Command
		current := &trueBranch
		depth := 0
		found := false
		rest := ctx.cmds
		for len(rest) > 0 {
			cmd := rest[0]
			rest = rest[1:]
			if !cmd.IsData() {
				switch cmd.Op() {
				case OpIf, OpNotIf:
					depth++
				case OpElse:
					if depth == 0 {
						current = &falseBranch
						continue
					}
				case OpEndIf:
					if depth == 0 {
						found = true
					} else {
						depth--
					}
				}
			}
			if found {
				break
			}
			*current = append(*current, cmd)
		}
		if !found {
			return false
		}

		branch := falseBranch
		if taken {
			branch = trueBranch
		}
		ctx.cmds = append(branch, rest...)
		return true
	}
}

func opVerify(ctx *opContext) bool {
	top, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	return DecodeNum(top) != 0
}

func opReturn(*opContext) bool { return false }

func opToAltStack(ctx *opContext) bool {
	top, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	ctx.altStack.push(top)
	return true
}

func opFromAltStack(ctx *opContext) bool {
	top, ok := ctx.altStack.pop()
	if !ok {
		return false
	}
	ctx.stack.push(top)
	return true
}

func opDrop(ctx *opContext) bool {
	_, ok := ctx.stack.pop()
	return ok
}

func opDup(ctx *opContext) bool {
	top, ok := ctx.stack.peek()
	if !ok {
		return false
	}
	ctx.stack.push(top)
	return true
}

func opSwap(ctx *opContext) bool {
	a, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	b, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	ctx.stack.push(a)
	ctx.stack.push(b)
	return true
}

func opEqual(ctx *opContext) bool {
	a, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	b, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	if bytes.Equal(a, b) {
		ctx.stack.push(EncodeNum(1))
	} else {
		ctx.stack.push(EncodeNum(0))
	}
	return true
}

func opEqualVerify(ctx *opContext) bool {
	return opEqual(ctx) && opVerify(ctx)
}

func opNot(ctx *opContext) bool {
	top, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	if DecodeNum(top) == 0 {
		ctx.stack.push(EncodeNum(1))
	} else {
		ctx.stack.push(EncodeNum(0))
	}
	return true
}

func opAdd(ctx *opContext) bool {
	a, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	b, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	ctx.stack.push(EncodeNum(DecodeNum(a) + DecodeNum(b)))
	return true
}

func opSub(ctx *opContext) bool {
	a, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	b, ok := ctx.stack.pop()
	if !ok {
		return false
	}
	// b was pushed before a: result is b - a.
	ctx.stack.push(EncodeNum(DecodeNum(b) - DecodeNum(a)))
	return true
}

func hashOp(h func([]byte) []byte) opFunc {
	return func(ctx *opContext) bool {
		top, ok := ctx.stack.pop()
		if !ok {
			return false
		}
		ctx.stack.push(h(top))
		return true
	}
}

var (
	opSha256  = hashOp(hash.Sha256)
	opHash160 = hashOp(hash.Hash160)
	opHash256 = hashOp(hash.Hash256)
)

// opCheckSig pops the SEC public key, then the DER signature with its
// trailing sighash-type byte, and verifies against the sighash z. A
// cryptographically invalid signature pushes the zero encoding and fails
// the opcode; it is an ordinary script failure, not an engine error.
func opCheckSig(ctx *opContext) bool {
	if ctx.stack.len() < 2 {
		return false
	}
	secBytes, _ := ctx.stack.pop()
	derBytes, _ := ctx.stack.pop()
	if len(derBytes) < 1 {
		return false
	}

	pub, err := secp256k1.ParseSEC(secBytes)
	if err != nil {
		return false
	}
	// The final byte is the sighash type, not part of the DER payload.
	sig, err := secp256k1.ParseDER(derBytes[:len(derBytes)-1])
	if err != nil {
		return false
	}

	if pub.Verify(ctx.z, sig) {
		ctx.stack.push(EncodeNum(1))
		return true
	}
	ctx.stack.push(EncodeNum(0))
	return false
}

func opCheckSigVerify(ctx *opContext) bool {
	return opCheckSig(ctx) && opVerify(ctx)
}
