// Package chainjson models the JSON chain specification document. It is a
// faithful, decode-only mirror of the document schema: hex-or-decimal
// numerics, unprefixed account addresses, left-padded storage words, a
// single-key tagged object for the engine section. Interpretation of the
// decoded values (defaults, validation, engine construction) belongs to the
// spec package.
package chainjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Spec is the top-level chain specification document.
type Spec struct {
	Name     string   `json:"name"`
	DataDir  string   `json:"dataDir,omitempty"`
	Engine   Engine   `json:"engine"`
	Params   Params   `json:"params"`
	Genesis  Genesis  `json:"genesis"`
	Accounts Accounts `json:"accounts"`
	Nodes    []string `json:"nodes,omitempty"`
}

// Load decodes a chain specification document from the reader. Empty and
// structurally invalid documents fail with a descriptive error.
func Load(r io.Reader) (*Spec, error) {
	spec := new(Spec)
	if err := json.NewDecoder(r).Decode(spec); err != nil {
		return nil, fmt.Errorf("chain spec json is invalid: %v", err)
	}
	if spec.Engine.tag() == "" {
		return nil, errors.New("chain spec json is invalid: missing engine section")
	}
	return spec, nil
}
