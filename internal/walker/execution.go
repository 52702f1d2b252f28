package walker

import "github.com/vantines/obfmatch/internal/bytecode"

// Config controls optional walker behavior. EnableStaticInlining is off by
// default, and nothing in this package or in internal/matcher reads it: the
// walker never steps into an INVOKESTATIC target on its own, whatever its
// value. Step-in happens only when a caller drives PushReturn and
// EnterBlocks itself, which makes the walker resume where it left off once
// the callee's blocks run dry, the way a call-frame stack pushes/pops a
// frame on CALL/RETURN. That return-stack machinery is always present and
// directly testable.
type Config struct {
	EnableStaticInlining bool
}

// Execution walks one method's basic blocks instruction by instruction.
type Execution struct {
	Blocks  []*Block
	byPos   map[int]*Block
	Current *Block

	InstrIndex int
	Terminated bool
	Paused     bool

	// ReturnStack holds absolute instruction indices to resume at once the
	// current inlined region is exhausted.
	ReturnStack []int

	visitedBranch map[*Block]bool
	visitedTrunk  map[*Block]bool

	// layers holds the caller's block graph (and its visited-branch/trunk
	// bookkeeping) each time EnterBlocks steps into a callee, so a step-out
	// restores the exact graph the saved return index belongs to.
	layers []layer

	cfg Config
}

type layer struct {
	blocks        []*Block
	byPos         map[int]*Block
	visitedBranch map[*Block]bool
	visitedTrunk  map[*Block]bool
}

// NewExecution builds a walker positioned at the first block of blocks,
// which must come from a single Partition call.
func NewExecution(blocks []*Block, cfg Config) *Execution {
	e := &Execution{
		Blocks:        blocks,
		byPos:         make(map[int]*Block, len(blocks)),
		visitedBranch: make(map[*Block]bool),
		visitedTrunk:  make(map[*Block]bool),
		cfg:           cfg,
	}
	for _, b := range blocks {
		for i := b.Start; i < b.End; i++ {
			e.byPos[i] = b
		}
	}
	if len(blocks) > 0 {
		e.Current = blocks[0]
		e.InstrIndex = blocks[0].Start
	} else {
		e.Terminated = true
	}
	return e
}

// CurrentInstruction returns the instruction the walker is sitting on, or
// ok=false once Terminated.
func (e *Execution) CurrentInstruction() (bytecode.Instruction, bool) {
	if e.Terminated || e.Current == nil {
		return bytecode.Instruction{}, false
	}
	return e.Current.Instructions[e.InstrIndex-e.Current.Start], true
}

// PushReturn records an absolute instruction index to resume at once the
// block graph currently being walked runs dry (step-out). Used by a
// caller implementing INVOKESTATIC step-in when
// Config.EnableStaticInlining is set.
func (e *Execution) PushReturn(instrIndex int) {
	e.ReturnStack = append(e.ReturnStack, instrIndex)
}

// EnterBlocks switches the walker onto a different method's block graph
// (step-in), positioning it at that graph's first block. Pairs with
// PushReturn so the walker resumes the caller's instruction stream once
// this inlined region is exhausted.
func (e *Execution) EnterBlocks(blocks []*Block) {
	e.layers = append(e.layers, layer{
		blocks:        e.Blocks,
		byPos:         e.byPos,
		visitedBranch: e.visitedBranch,
		visitedTrunk:  e.visitedTrunk,
	})

	byPos := make(map[int]*Block, len(blocks))
	for _, b := range blocks {
		for i := b.Start; i < b.End; i++ {
			byPos[i] = b
		}
	}
	e.Blocks = blocks
	e.byPos = byPos
	e.visitedBranch = make(map[*Block]bool)
	e.visitedTrunk = make(map[*Block]bool)
	if len(blocks) > 0 {
		e.Current = blocks[0]
		e.InstrIndex = blocks[0].Start
	} else {
		e.Terminated = true
	}
}

// popLayer restores the most recently saved caller block graph, used when
// a step-out pops the return stack.
func (e *Execution) popLayer() {
	if len(e.layers) == 0 {
		return
	}
	l := e.layers[len(e.layers)-1]
	e.layers = e.layers[:len(e.layers)-1]
	e.Blocks = l.blocks
	e.byPos = l.byPos
	e.visitedBranch = l.visitedBranch
	e.visitedTrunk = l.visitedTrunk
}

// Step advances the walker by one instruction, crossing into the next
// block (or terminating) once the current block is exhausted. A paused or
// already-terminated execution does not move.
func (e *Execution) Step() {
	if e.Terminated || e.Paused || e.Current == nil {
		return
	}
	e.InstrIndex++
	if e.InstrIndex < e.Current.End {
		return
	}
	next, stepOut, resumeAt := e.nextBlock()
	if stepOut {
		e.popLayer()
		b, ok := e.byPos[resumeAt]
		if !ok {
			e.Terminated = true
			return
		}
		e.Current = b
		e.InstrIndex = resumeAt
		return
	}
	if next == nil {
		e.Terminated = true
		return
	}
	e.Current = next
	e.InstrIndex = next.Start
}

// nextBlock applies the step rule, in order:
//  1. the first not-yet-visited branch of the current block;
//  2. the current block's fallthrough successor;
//  3. a step-out via the return stack, if anything was pushed onto it;
//  4. the current block's origin's trunk, if one exists and hasn't been
//     visited yet;
//  5. otherwise the walk terminates.
func (e *Execution) nextBlock() (next *Block, stepOut bool, resumeAt int) {
	cur := e.Current
	for _, br := range cur.Branches {
		if e.visitedBranch[br] {
			continue
		}
		e.visitedBranch[br] = true
		br.Trunk = cur
		return br, false, 0
	}
	if cur.Next != nil {
		return cur.Next, false, 0
	}
	if len(e.ReturnStack) > 0 {
		idx := e.ReturnStack[len(e.ReturnStack)-1]
		e.ReturnStack = e.ReturnStack[:len(e.ReturnStack)-1]
		return nil, true, idx
	}
	origin := cur.Origin()
	if origin.Trunk != nil && !e.visitedTrunk[origin.Trunk] {
		e.visitedTrunk[origin.Trunk] = true
		return origin.Trunk, false, 0
	}
	return nil, false, 0
}
