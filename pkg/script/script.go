// Package script implements a subset of the Bitcoin Script language: a
// parser and serializer for the wire format and a stack machine that
// decides whether a spending condition holds for a given sighash.
package script

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/justinian336/bitcoin/pkg/encoding"
)

// ErrMalformedScript is returned when a serialized script does not parse
// cleanly, for example when the declared length disagrees with the bytes
// consumed.
var ErrMalformedScript = errors.New("malformed script")

// Command is one script instruction: either an opcode or a data push.
// Exactly one variant is populated; IsData selects between them.
type Command struct {
	op     Opcode
	data   []byte
	isData bool
}

// OpCommand wraps an opcode as a command.
func OpCommand(op Opcode) Command {
	return Command{op: op}
}

// DataCommand wraps a byte string as a push command.
func DataCommand(data []byte) Command {
	return Command{data: data, isData: true}
}

// IsData reports whether the command is a data push.
func (c Command) IsData() bool { return c.isData }

// Op returns the opcode variant. Only meaningful when IsData is false.
func (c Command) Op() Opcode { return c.op }

// Data returns the push payload. Only meaningful when IsData is true.
func (c Command) Data() []byte { return c.data }

func (c Command) String() string {
	if c.isData {
		return fmt.Sprintf("%x", c.data)
	}
	return c.op.String()
}

// Script is an immutable ordered sequence of commands.
type Script struct {
	cmds []Command
}

// NewScript builds a script from commands in execution order.
func NewScript(cmds ...Command) *Script {
	return &Script{cmds: append([]Command{}, cmds...)}
}

// Commands returns a copy of the command sequence.
func (s *Script) Commands() []Command {
	return append([]Command{}, s.cmds...)
}

// Add concatenates two scripts. No size or validity checks are applied;
// this is the simplification used when combining a scriptSig with its
// scriptPubKey.
func (s *Script) Add(other *Script) *Script {
	cmds := make([]Command, 0, len(s.cmds)+len(other.cmds))
	cmds = append(cmds, s.cmds...)
	cmds = append(cmds, other.cmds...)
	return &Script{cmds: cmds}
}

// Parse reads a script from r: a varint byte length followed by exactly
// that many bytes of commands. Byte values 1..75 push that many bytes
// directly; OP_PUSHDATA1/2/4 carry an explicit little-endian length;
// anything else is an opcode.
func Parse(r io.Reader) (*Script, error) {
	length, err := encoding.ReadVarint(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading length: %v", ErrMalformedScript, err)
	}

	var cmds []Command
	count := uint64(0)
	readData := func(n uint64) ([]byte, error) {
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: truncated data push: %v", ErrMalformedScript, err)
		}
		return buf, nil
	}

	for count < length {
		var current [1]byte
		if _, err := io.ReadFull(r, current[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated script: %v", ErrMalformedScript, err)
		}
		count++
		b := current[0]

		switch {
		case b >= 1 && b <= maxDirectPush:
			data, err := readData(uint64(b))
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, DataCommand(data))
			count += uint64(b)

		case Opcode(b) == OpPushdata1 || Opcode(b) == OpPushdata2 || Opcode(b) == OpPushdata4:
			nBytes := uint64(1)
			if Opcode(b) == OpPushdata2 {
				nBytes = 2
			} else if Opcode(b) == OpPushdata4 {
				nBytes = 4
			}
			lenBuf, err := readData(nBytes)
			if err != nil {
				return nil, err
			}
			dataLen := encoding.LittleEndianToInt(lenBuf)
			data, err := readData(dataLen)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, DataCommand(data))
			count += nBytes + dataLen

		default:
			cmds = append(cmds, OpCommand(Opcode(b)))
		}
	}

	if count != length {
		return nil, fmt.Errorf("%w: consumed %d bytes of a declared %d", ErrMalformedScript, count, length)
	}
	return &Script{cmds: cmds}, nil
}

// Serialize renders the script with its varint length prefix. Data pushes
// use the smallest encoding the parser accepts: a bare length byte up to
// 75 bytes, then PUSHDATA1, PUSHDATA2 and PUSHDATA4 by magnitude.
func (s *Script) Serialize() ([]byte, error) {
	body, err := s.rawSerialize()
	if err != nil {
		return nil, err
	}
	return append(encoding.EncodeVarint(uint64(len(body))), body...), nil
}

func (s *Script) rawSerialize() ([]byte, error) {
	var out []byte
	for _, cmd := range s.cmds {
		if !cmd.isData {
			out = append(out, byte(cmd.op))
			continue
		}

		length := uint64(len(cmd.data))
		switch {
		case length <= maxDirectPush:
			out = append(out, byte(length))
		case length < 1<<8:
			out = append(out, byte(OpPushdata1), byte(length))
		case length < 1<<16:
			out = append(out, byte(OpPushdata2))
			out = append(out, encoding.IntToLittleEndian(length, 2)...)
		case length < 1<<32:
			out = append(out, byte(OpPushdata4))
			out = append(out, encoding.IntToLittleEndian(length, 4)...)
		default:
			return nil, fmt.Errorf("%w: data push of %d bytes", encoding.ErrEncodingTooLarge, length)
		}
		out = append(out, cmd.data...)
	}
	return out, nil
}

// P2PKHScript builds the standard pay-to-pubkey-hash locking script:
// OP_DUP OP_HASH160 <h160> OP_EQUALVERIFY OP_CHECKSIG.
func P2PKHScript(h160 []byte) *Script {
	return NewScript(
		OpCommand(OpDup),
		OpCommand(OpHash160),
		DataCommand(h160),
		OpCommand(OpEqualVerify),
		OpCommand(OpCheckSig),
	)
}

// Evaluate runs the script against the sighash z. Opcode failures,
// including invalid signatures, yield false; the script succeeds iff the
// final stack is non-empty with a non-empty top element.
func (s *Script) Evaluate(z *big.Int) bool {
	ctx := &opContext{
		stack:    &stack{},
		altStack: &stack{},
		cmds:     s.Commands(),
		z:        z,
	}

	for len(ctx.cmds) > 0 {
		cmd := ctx.cmds[0]
		ctx.cmds = ctx.cmds[1:]

		if cmd.IsData() {
			ctx.stack.push(cmd.Data())
			continue
		}

		op, ok := opcodeTable[cmd.Op()]
		if !ok {
			return false
		}
		if !op(ctx) {
			return false
		}
	}

	top, ok := ctx.stack.peek()
	return ok && len(top) > 0
}
