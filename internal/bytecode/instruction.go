package bytecode

// Instruction is one decoded bytecode instruction, shaped to carry exactly
// the operand data the per-family comparison rules need. Owner
// references are plain internal-name strings (as they appear in a real
// constant pool) rather than resolved pointers — resolution against a
// specific class group happens later, in internal/resolve, which is the
// only place that needs to know about internal/model's Class/Method/Field
// types. This keeps the instruction decoder itself group-agnostic, the way
// a real bytecode parser's constant pool is agnostic to which other class
// group it might eventually be compared against.
type Instruction struct {
	Op  Op
	Pos int // index within the owning method's instruction list

	IntOperand int64 // BIPUSH/SIPUSH/ICONST_* operand; IINC increment

	VarIndex int // local slot for xLOAD/xSTORE/IINC — never compared

	Owner      string // type/field/method instruction's owner class
	MemberName string // field/method name
	MemberDesc string // field/method descriptor

	InterfaceCall bool // method instruction dispatches via an interface

	ConstKind   ConstantKind
	Constant    interface{} // LDC operand for non-Type constants
	ConstClass  string      // LDC Type constant's target class (OBJECT/ARRAY sort)

	Bootstrap     Handle        // invokedynamic bootstrap method handle
	BootstrapArgs []interface{} // invokedynamic static bootstrap arguments

	JumpTarget int // absolute instruction index a jump/GOTO targets

	SwitchMin  int32   // TABLESWITCH low key
	SwitchMax  int32   // TABLESWITCH high key
	SwitchKeys []int32 // LOOKUPSWITCH keys, in declared order

	Dims int // MULTIANEWARRAY dimension count

	// IsConditional distinguishes an IF* jump (falls through when not
	// taken) from an unconditional GOTO.
	IsConditional bool

	// BranchTargets lists every non-fallthrough successor instruction
	// index this instruction can transfer control to: the single target
	// of a jump, or every case (plus default) of a switch. Empty for
	// straight-line instructions.
	BranchTargets []int
}

// JumpSign returns -1, 0, or 1 for a backward, self, or forward jump.
func (i Instruction) JumpSign() int {
	d := i.JumpTarget - i.Pos
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
