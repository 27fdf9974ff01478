package testdata

// settings demonstrates an unexported struct with unexported fields
type settings struct {
	// Exported field of an unexported struct
	Host string

	maxRetries int

	// Slices are already nilable
	buffer []byte `partially:"transparent"`

	cache map[string]any `partially:"omit"`
}
