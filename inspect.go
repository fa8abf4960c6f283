package ioc

import (
	"io"

	"gopkg.in/yaml.v3"
)

// BindingInfo contains diagnostic information about one binding.
type BindingInfo struct {
	Key            string    `yaml:"key"`
	Index          int       `yaml:"index"`
	Implementation string    `yaml:"implementation"`
	Lifecycle      Lifecycle `yaml:"lifecycle"`
	Dependencies   []string  `yaml:"dependencies,omitempty"`
	Instantiated   bool      `yaml:"instantiated"`
}

// Info returns diagnostic information about the binding. Index is the
// binding's position among the bindings of its key.
func (b *Binding) Info(index int) BindingInfo {
	deps := make([]string, len(b.plan.params))
	for i, p := range b.plan.params {
		deps[i] = p.String()
	}

	return BindingInfo{
		Key:            b.key.String(),
		Index:          index,
		Implementation: b.plan.implementation.String(),
		Lifecycle:      b.lifecycle,
		Dependencies:   deps,
		Instantiated:   b.Instantiated(),
	}
}

// Inspect returns information about every binding, grouped by key in
// first-registration order and by registration order within a key.
func (r *Registry) Inspect() []BindingInfo {
	var infos []BindingInfo

	for _, key := range r.Keys() {
		for i, b := range r.Lookup(key) {
			infos = append(infos, b.Info(i))
		}
	}

	return infos
}

// WriteYAML encodes Inspect() as a YAML sequence.
func (r *Registry) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r.Inspect()); err != nil {
		return err
	}

	return enc.Close()
}
