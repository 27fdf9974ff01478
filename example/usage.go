package example

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/ecordell/partialgen/partially"
)

// LoadServer overlays every YAML overrides document onto base, in order.
// Keys missing from a document leave the corresponding field untouched.
func LoadServer(base Server, overrides ...[]byte) (Server, error) {
	patches := make([]ServerPatch, 0, len(overrides))
	for i, doc := range overrides {
		var patch ServerPatch
		if err := yaml.Unmarshal(doc, &patch); err != nil {
			return Server{}, fmt.Errorf("failed to decode overrides document %d: %w", i, err)
		}
		patches = append(patches, patch)
	}

	partially.ApplyAll[ServerPatch](&base, patches...)
	return base, nil
}
