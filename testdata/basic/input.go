package testdata

// Data holds a single value.
type Data struct {
	Value string
}
