package testdata

// Color is not a struct
type Color int

// Broken has problems in several fields
//
//partially:rename="Not Valid"
type Broken struct {
	Both   *int `partially:"transparent,as_type=*int64"`
	Hidden int  `partially:"omit,rename=\"Shown\""`
	Fine   string
	Unknown int `partially:"frobnicate"`
}
