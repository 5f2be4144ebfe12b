// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// configs stores the construction-time parameters of a ZDD engine.
type configs struct {
	numVar         int32 // number of variables in the universe {1..numVar}
	sanityCheck    bool  // validate the five structural invariants once, after Load's setup
	initialLogSize int   // initial capacity of the hidden-node log
}

func makeconfigs(numVar int32) *configs {
	return &configs{
		numVar:         numVar,
		initialLogSize: 4 * int(numVar),
	}
}

// Sanity is a configuration option (function). Used as a parameter to Load,
// it turns on validation of the five structural invariants of spec §3 once,
// right after the loaded ZDD has been set up; Load then returns the ZDD
// together with the first violation found. Covers and uncovers during Search
// are not checked. It is off by default since the check walks the whole
// active node set.
func Sanity(on bool) func(*configs) {
	return func(c *configs) {
		c.sanityCheck = on
	}
}

// InitialLogSize is a configuration option (function). It sets a preferred
// initial capacity for the hidden-node log, to avoid reallocation during the
// first few levels of search. The default is proportional to the number of
// variables.
func InitialLogSize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.initialLogSize = size
		}
	}
}
