package script

import "fmt"

// Opcode identifies a script operation.
type Opcode byte

// The opcode subset understood by this engine. Values match the Bitcoin
// wire encoding.
const (
	OpFalse          Opcode = 0x00 // OP_0
	OpPushdata1      Opcode = 0x4c
	OpPushdata2      Opcode = 0x4d
	OpPushdata4      Opcode = 0x4e
	Op1Negate        Opcode = 0x4f
	OpTrue           Opcode = 0x51 // OP_1
	Op2              Opcode = 0x52
	Op16             Opcode = 0x60
	OpNop            Opcode = 0x61
	OpIf             Opcode = 0x63
	OpNotIf          Opcode = 0x64
	OpElse           Opcode = 0x67
	OpEndIf          Opcode = 0x68
	OpVerify         Opcode = 0x69
	OpReturn         Opcode = 0x6a
	OpToAltStack     Opcode = 0x6b
	OpFromAltStack   Opcode = 0x6c
	OpDrop           Opcode = 0x75
	OpDup            Opcode = 0x76
	OpSwap           Opcode = 0x7c
	OpEqual          Opcode = 0x87
	OpEqualVerify    Opcode = 0x88
	OpNot            Opcode = 0x91
	OpAdd            Opcode = 0x93
	OpSub            Opcode = 0x94
	OpSha256         Opcode = 0xa8
	OpHash160        Opcode = 0xa9
	OpHash256        Opcode = 0xaa
	OpCheckSig       Opcode = 0xac
	OpCheckSigVerify Opcode = 0xad
)

// maxDirectPush is the largest data length encoded as a bare length byte;
// longer pushes need a PUSHDATA marker.
const maxDirectPush = 75

var opcodeNames = map[Opcode]string{
	OpFalse:          "OP_0",
	Op1Negate:        "OP_1NEGATE",
	OpNop:            "OP_NOP",
	OpIf:             "OP_IF",
	OpNotIf:          "OP_NOTIF",
	OpElse:           "OP_ELSE",
	OpEndIf:          "OP_ENDIF",
	OpVerify:         "OP_VERIFY",
	OpReturn:         "OP_RETURN",
	OpToAltStack:     "OP_TOALTSTACK",
	OpFromAltStack:   "OP_FROMALTSTACK",
	OpDrop:           "OP_DROP",
	OpDup:            "OP_DUP",
	OpSwap:           "OP_SWAP",
	OpEqual:          "OP_EQUAL",
	OpEqualVerify:    "OP_EQUALVERIFY",
	OpNot:            "OP_NOT",
	OpAdd:            "OP_ADD",
	OpSub:            "OP_SUB",
	OpSha256:         "OP_SHA256",
	OpHash160:        "OP_HASH160",
	OpHash256:        "OP_HASH256",
	OpCheckSig:       "OP_CHECKSIG",
	OpCheckSigVerify: "OP_CHECKSIGVERIFY",
}

// String returns the canonical OP_* name, or a numeric form for opcodes
// outside the implemented subset.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if op >= OpTrue && op <= Op16 {
		return fmt.Sprintf("OP_%d", int(op-OpTrue)+1)
	}
	return fmt.Sprintf("OP_UNKNOWN(0x%02x)", byte(op))
}
