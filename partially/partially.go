// Package partially is the runtime contract of the types generated by
// partialgen.
//
// A base struct annotated for partialgen gets a partial counterpart in which
// every field may be absent, and an ApplySome method that copies the present
// fields onto the base:
//
//	//go:generate go run github.com/ecordell/partialgen -output=config_partial.go . Config
//	type Config struct {
//		Name string
//		Port int `partially:"as_type=*int32"`
//	}
//
//	cfg := Config{Name: "a", Port: 80}
//	partially.Apply[PartialConfig](&cfg, PartialConfig{Name: lo.ToPtr("b")})
//	// cfg is now {Name: "b", Port: 80}
package partially

// Partial is implemented by a pointer to a base struct whose partial type
// is P.
type Partial[P any] interface {
	// ApplySome copies every field that is present in partial onto the
	// receiver and reports whether any field was copied. Absent fields leave
	// the receiver untouched.
	ApplySome(partial P) bool
}

// Apply merges partial into base.
func Apply[P any](base Partial[P], partial P) bool {
	return base.ApplySome(partial)
}

// ApplyAll merges each partial into base in order, so later partials win
// over earlier ones. It reports whether any field was copied.
func ApplyAll[P any](base Partial[P], partials ...P) bool {
	applied := false
	for _, partial := range partials {
		if base.ApplySome(partial) {
			applied = true
		}
	}
	return applied
}
