package gctx

import "strings"

// OptionKey names one of the closed set of typed options a Context carries.
type OptionKey int

const (
	// RandomFixedSeed, when true, makes every Context initialization produce
	// the same pseudo-random sequence.
	RandomFixedSeed OptionKey = iota
	// Deterministic, when true, forces RandomFixedSeed and requires engines
	// to avoid any non-deterministic reduction order.
	Deterministic
)

// OptionMap is the typed KV store every Context carries. The key set is
// closed by design (spec: {RandomFixedSeed, Deterministic}); callers never
// add arbitrary keys.
type OptionMap struct {
	values map[OptionKey]bool
}

// NewOptionMap returns an OptionMap with every option false.
func NewOptionMap() *OptionMap {
	return &OptionMap{values: make(map[OptionKey]bool, 2)}
}

// Get reports the current value of key (false if never set).
func (m *OptionMap) Get(key OptionKey) bool {
	if m == nil {
		return false
	}
	return m.values[key]
}

// Set assigns key := val. Setting Deterministic to true implies
// RandomFixedSeed is also set to true; the reverse never implies anything.
func (m *OptionMap) Set(key OptionKey, val bool) {
	m.values[key] = val
	if key == Deterministic && val {
		m.values[RandomFixedSeed] = true
	}
}

// ParseOptions parses the textual grammar:
//
//	d = Deterministic  = true
//	u = Deterministic  = false
//	f = RandomFixedSeed = true
//	r = RandomFixedSeed = false
//
// Letters are whitespace- and comma-separated; unknown letters are reported
// as ErrUnknownOption. Parsing applies letters left to right, so "d,u" ends
// with Deterministic=false (and RandomFixedSeed left at whatever "d" set,
// i.e. true — "u" only clears Deterministic, matching the one-directional
// implication above).
func (m *OptionMap) ParseOptions(text string) error {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	for _, f := range fields {
		switch f {
		case "d":
			m.Set(Deterministic, true)
		case "u":
			m.Set(Deterministic, false)
		case "f":
			m.Set(RandomFixedSeed, true)
		case "r":
			m.Set(RandomFixedSeed, false)
		case "":
			continue
		default:
			return ErrUnknownOption
		}
	}
	return nil
}
