package testdata

// Container is a generic container type
type Container[T any] struct {
	Value T
}

//partially:derive(Equal)
// Pair is a generic type with two type parameters
type Pair[K comparable, V ~int | ~string] struct {
	Key   K
	Value V `json:"value"`
}

// GenericConfig demonstrates various generic field types
type GenericConfig struct {
	// Single type parameter
	StringContainer Container[string]

	// Multiple type parameters
	StringIntPair Pair[string, int]

	// Pointers to generic types are kept
	OptionalContainer *Container[bool] `partially:"transparent"`

	// Slices of generic types are kept
	Containers []Container[string] `partially:"transparent"`

	// Map with generic value type
	ContainerMap map[string]Container[int]
}
