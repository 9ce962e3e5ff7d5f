// Package integration assembles loaded chain specifications for the tooling:
// it maps preset names to the bundled documents and prepares the chain
// database directory layout a node would use.
package integration

import (
	"fmt"
	"strings"

	"github.com/rony4d/go-chainspec/spec"
)

// GetSpecByName returns the bundled chain specification with the given
// preset name. An empty name selects the null chain.
func GetSpecByName(name string) (*spec.Spec, error) {
	if name == "" {
		name = "null"
	}
	s, err := spec.Bundled(name)
	if err != nil {
		return nil, fmt.Errorf("unknown chain preset %q (valid: %s)", name, strings.Join(spec.BundledNames(), ", "))
	}
	return s, nil
}
