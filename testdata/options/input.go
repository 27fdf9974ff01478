package testdata

// OptionsTest demonstrates partially options.
//
//partially:rename="OptionsPatch", derive(Equal, fmt.Stringer)
//partially:attribute(Deprecated: use Options instead.)
type OptionsTest struct {
	// Name is copied as a pointer.
	Name string `yaml:"name"`

	// Internal is left out.
	Internal int `partially:"omit"`

	//partially:rename="Identifier"
	ID string `yaml:"id" partially:"as_type=*string"`

	// Port accepts a narrower type.
	Port int `partially:"as_type=*int32" yaml:"port"`

	// Labels are merged as a whole.
	Labels map[string]string `partially:"transparent"`

	InternalData []byte `partially:"omit"`
}
