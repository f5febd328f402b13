package genai

// Registry holds the configured generators keyed by provider name,
// mirroring the per-provider credential map of the service configuration.
type Registry struct {
	generators  map[string]Generator
	defaultName string
}

// NewRegistry builds a registry. defaultName selects the generator used
// when a query names no provider.
func NewRegistry(generators map[string]Generator, defaultName string) *Registry {
	return &Registry{
		generators:  generators,
		defaultName: defaultName,
	}
}

// Generator returns the named generator, falling back to the default when
// name is empty. Returns ErrNotConfigured when no matching generator has a
// credential configured.
func (r *Registry) Generator(name string) (Generator, error) {
	if name == "" {
		name = r.defaultName
	}

	gen, ok := r.generators[name]
	if !ok {
		return nil, ErrNotConfigured
	}
	return gen, nil
}

// Providers lists the configured provider names.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	return names
}
