package walker

import "github.com/vantines/obfmatch/internal/bytecode"

// DefaultPausePredicate pauses on every instruction kind the bytecode
// comparator (internal/compare) has an opinion about — anything with an
// operand or resolvable reference worth lining up — and lets plain stack
// shuffling (DUP, POP, arithmetic, ARRAYLENGTH, ...) flow through
// unpaused, since compare.Comparator.Equal falls back to a bare opcode
// match for those anyway.
func DefaultPausePredicate(in bytecode.Instruction) bool {
	switch in.Op {
	case bytecode.OpIntPush,
		bytecode.OpVarLoad,
		bytecode.OpVarStore,
		bytecode.OpTypeInstr,
		bytecode.OpGetField,
		bytecode.OpPutField,
		bytecode.OpGetStatic,
		bytecode.OpPutStatic,
		bytecode.OpInvokeVirtual,
		bytecode.OpInvokeStatic,
		bytecode.OpInvokeSpecial,
		bytecode.OpInvokeInterface,
		bytecode.OpInvokeDynamic,
		bytecode.OpJump,
		bytecode.OpLdc,
		bytecode.OpIinc,
		bytecode.OpTableSwitch,
		bytecode.OpLookupSwitch,
		bytecode.OpMultiANewArray:
		return true
	default:
		return false
	}
}
