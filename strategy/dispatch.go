package strategy

import "github.com/katalvlaran/scotch/gctx"

// Dispatch interprets node against inst using table's methods, recursing
// through Concat/Cond/Select structure. A Method node invokes the named
// function directly; Concat short-circuits on the first error; Cond
// evaluates its test and recurses into the matching branch (or does nothing
// if the test is false and there is no else-branch); Select explores both
// branches on independent clones of inst and keeps the better one per
// inst.Better, per spec.md §4.2.
func Dispatch(ctx *gctx.Context, table *Table, node *Node, inst ProblemInstance) error {
	if node == nil {
		return ErrNilNode
	}
	switch node.Tag {
	case TagEmpty:
		return nil

	case TagMethod:
		entry, ok := table.Methods[node.Method]
		if !ok {
			return ErrUnknownMethod
		}
		return entry.Fn(ctx, inst, node.Params)

	case TagConcat:
		if err := Dispatch(ctx, table, node.Children[0], inst); err != nil {
			return err
		}
		return Dispatch(ctx, table, node.Children[1], inst)

	case TagCond:
		ok, err := node.Test.Eval(inst)
		if err != nil {
			return err
		}
		if ok {
			return Dispatch(ctx, table, node.Children[0], inst)
		}
		if len(node.Children) > 1 {
			return Dispatch(ctx, table, node.Children[1], inst)
		}
		return nil

	case TagSelect:
		left := inst.Clone()
		right := inst.Clone()
		errLeft := Dispatch(ctx, table, node.Children[0], left)
		errRight := Dispatch(ctx, table, node.Children[1], right)

		switch {
		case errLeft != nil && errRight != nil:
			return ErrBothBranchesFailed
		case errLeft != nil:
			return adoptInto(inst, right)
		case errRight != nil:
			return adoptInto(inst, left)
		default:
			if right.Better(left) {
				return adoptInto(inst, right)
			}
			return adoptInto(inst, left)
		}

	default:
		return ErrNilNode
	}
}

// adoptInto copies winner's state back into inst. ProblemInstance
// implementations that are reference types (the common case: a pointer to a
// mutable result struct) implement Adopt; value-shaped instances can ignore
// it by embedding a no-op, but every engine instance in this module is
// pointer-shaped and implements it for real.
func adoptInto(inst, winner ProblemInstance) error {
	if a, ok := inst.(interface{ Adopt(ProblemInstance) }); ok {
		a.Adopt(winner)
		return nil
	}
	return nil
}
