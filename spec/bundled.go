package spec

import (
	"bytes"
	"embed"
	"fmt"
)

//go:embed res
var bundledFS embed.FS

// Bundled loads one of the chain specifications shipped with the client.
// The name is the bare file name under res/, without the .json suffix.
func Bundled(name string) (*Spec, error) {
	data, err := bundledFS.ReadFile("res/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("no bundled chain spec %q", name)
	}
	return Load(bytes.NewReader(data))
}

// BundledNames lists the bundled chain specification names.
func BundledNames() []string {
	entries, err := bundledFS.ReadDir("res")
	if err != nil {
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		names = append(names, name[:len(name)-len(".json")])
	}
	return names
}

// The bundled documents are compiled in; failing to load one is a bug.
func mustBundled(name string) *Spec {
	s, err := Bundled(name)
	if err != nil {
		panic(err)
	}
	return s
}

// NewNullSpec returns the minimal no-op-engine chain.
func NewNullSpec() *Spec { return mustBundled("null") }

// NewTestSpec returns the morden-style test chain.
func NewTestSpec() *Spec { return mustBundled("null_morden") }

// NewConstructorSpec returns a chain with a genesis constructor account.
func NewConstructorSpec() *Spec { return mustBundled("constructor") }

// NewInstantSpec returns the instant-seal development chain.
func NewInstantSpec() *Spec { return mustBundled("instant_seal") }

// NewRoundSpec returns an authority-round test chain.
func NewRoundSpec() *Spec { return mustBundled("authority_round") }

// NewTendermintSpec returns a BFT-style test chain.
func NewTendermintSpec() *Spec { return mustBundled("tendermint") }

// NewPowTestSpec returns a proof-of-work test chain.
func NewPowTestSpec() *Spec { return mustBundled("pow_test") }
