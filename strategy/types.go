package strategy

import "github.com/katalvlaran/scotch/gctx"

// NodeTag identifies the kind of a strategy tree node.
type NodeTag int

const (
	TagEmpty NodeTag = iota
	TagMethod
	TagConcat
	TagCond
	TagSelect
)

// Node is one immutable strategy-tree node. The fields that matter depend on
// Tag: Method/Params for TagMethod, Children[0:2] for TagConcat/TagSelect,
// Test+Children[0:1|2] for TagCond.
type Node struct {
	Tag      NodeTag
	Method   string
	Params   any // method-specific parameter record, already populated
	Test     CondExpr
	Children []*Node
}

// ProblemInstance is the state a Dispatch call threads through a strategy
// tree. Each engine (partition, order, coarsen) implements it for its own
// problem shape.
type ProblemInstance interface {
	// Feature returns the value of a named condition-test feature (local
	// vertex count, edge count, recursion level, process count, ...); the
	// set of valid names is declared per Table.
	Feature(name string) (float64, bool)

	// Clone returns a deep-enough copy for a Select node to explore an
	// alternative branch independently of the original.
	Clone() ProblemInstance

	// Better reports whether this instance's outcome is preferable to
	// other's, per the problem's own comparator (e.g. for partitioning:
	// valid balance beats invalid; among valid, lower cut wins; ties break
	// on smaller imbalance).
	Better(other ProblemInstance) bool
}

// MethodFunc implements one named method against a problem instance.
type MethodFunc func(ctx *gctx.Context, inst ProblemInstance, params any) error

// MethodEntry binds a method name to its function and default parameter
// record.
type MethodEntry struct {
	Name          string
	Fn            MethodFunc
	DefaultParams any
}

// ParamType is the type tag of a method parameter.
type ParamType int

const (
	ParamInt ParamType = iota
	ParamDouble
	ParamCase
	ParamStrat
)

// ParamDescriptor describes one settable parameter of a method's parameter
// record. Set receives the already-allocated record (as built from
// MethodEntry.DefaultParams) and the raw parsed value (int64, float64,
// string, or *Node for ParamStrat) and assigns it into the record.
type ParamDescriptor struct {
	Name     string
	Type     ParamType
	Set      func(params any, value any) error
	SubTable *Table // only consulted for ParamStrat
}

// Table is a strategy table: every method available for one kind of problem
// (graph partitioning, ordering, ...), plus the parameter descriptors needed
// to parse each method's call, plus the feature names its condition
// expressions may reference.
type Table struct {
	Name     string
	Methods  map[string]*MethodEntry
	Params   map[string][]ParamDescriptor // keyed by method name
	Features map[string]bool
}

// NewTable creates an empty Table named name.
func NewTable(name string) *Table {
	return &Table{
		Name:     name,
		Methods:  make(map[string]*MethodEntry),
		Params:   make(map[string][]ParamDescriptor),
		Features: make(map[string]bool),
	}
}

// AddMethod registers a method and its parameter descriptors.
func (t *Table) AddMethod(entry *MethodEntry, params ...ParamDescriptor) {
	t.Methods[entry.Name] = entry
	t.Params[entry.Name] = params
}

// AddFeature declares a condition-test feature name as valid for this table.
func (t *Table) AddFeature(name string) { t.Features[name] = true }

// newParamRecord returns the parameter record one parse fills in: the
// result of the default's Clone method when the default implements Cloner
// (typically a pointer to a fresh copy, so Set functions can mutate it),
// otherwise the default itself, shared with every other parse.
func newParamRecord(def any) any {
	switch v := def.(type) {
	case nil:
		return nil
	default:
		// Shallow copy via a type switch on common record shapes is avoided;
		// callers register a DefaultParams implementing Cloner so every
		// method controls its own copy semantics.
		if c, ok := v.(Cloner); ok {
			return c.Clone()
		}
		return v
	}
}

// Cloner lets a parameter-record type control how its default is copied
// before a parse fills in overrides.
type Cloner interface{ Clone() any }
