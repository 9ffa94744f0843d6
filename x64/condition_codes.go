package x64

// ConditionCode is the 4-bit condition field of Jcc, SETcc and CMOVcc opcodes.
type ConditionCode byte

const (
	CCOverflow    ConditionCode = 0
	CCNoOverflow  ConditionCode = 1
	CCUnsignedLT  ConditionCode = 2
	CCUnsignedGTE ConditionCode = 3
	CCEq          ConditionCode = 4
	CCNeq         ConditionCode = 5
	CCUnsignedLTE ConditionCode = 6
	CCUnsignedGT  ConditionCode = 7
	CCSign        ConditionCode = 8
	CCNoSign      ConditionCode = 9
	CCParity      ConditionCode = 0xA
	CCNoParity    ConditionCode = 0xB
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

var jccTable = [16]Inst{
	JO, JNO, JB, JNB, JZ, JNZ, JBE, JNBE,
	JS, JNS, JP, JNP, JL, JNL, JLE, JNLE,
}

var setccTable = [16]Inst{
	SETO, SETNO, SETB, SETNB, SETZ, SETNZ, SETBE, SETNBE,
	SETS, SETNS, SETP, SETNP, SETL, SETNL, SETLE, SETNLE,
}

var cmovccTable = [16]Inst{
	CMOVO, CMOVNO, CMOVB, CMOVNB, CMOVZ, CMOVNZ, CMOVBE, CMOVNBE,
	CMOVS, CMOVNS, CMOVP, CMOVNP, CMOVL, CMOVNL, CMOVLE, CMOVNLE,
}

// Get the conditional-jump instruction for a condition code.
func Jcc(cc ConditionCode) Inst { return jccTable[cc&0xf] }

// Get the conditional-set instruction for a condition code.
func Setcc(cc ConditionCode) Inst { return setccTable[cc&0xf] }

// Get the conditional-move instruction for a condition code.
func Cmovcc(cc ConditionCode) Inst { return cmovccTable[cc&0xf] }

// Invert a condition code. Conditions come in pairs differing in the lowest bit.
func Invcc(cc ConditionCode) ConditionCode { return (cc ^ 1) & 0xf }
