package logic

import (
	"fmt"

	"satkit/pkg/sat"
)

// Registry is a bidirectional mapping between variable names and the positive
// integer indices the oracle works with. Indices are assigned in first-seen
// order starting at 1 (signed zero cannot encode negation). A registry is
// owned by a single translation/solve invocation and must never be shared
// across unrelated problems, otherwise indices from different encodings
// collide.
type Registry struct {
	indices map[string]uint64
	names   []string
}

func NewRegistry() *Registry {
	return &Registry{indices: make(map[string]uint64)}
}

// Intern returns the index of the variable name, assigning the next unused
// positive integer on first sight. The mapping grows monotonically and never
// shrinks.
func (registry *Registry) Intern(name string) uint64 {
	if index, ok := registry.indices[name]; ok {
		return index
	}
	registry.names = append(registry.names, name)
	index := uint64(len(registry.names))
	registry.indices[name] = index
	return index
}

// Name returns the variable name registered under the given index.
func (registry *Registry) Name(index uint64) (string, bool) {
	if index == 0 || index > uint64(len(registry.names)) {
		return "", false
	}
	return registry.names[index-1], true
}

// Size returns the number of registered variables.
func (registry *Registry) Size() uint64 {
	return uint64(len(registry.names))
}

// Index translates a single literal into its signed oracle integer.
func (registry *Registry) Index(literal Literal) (int64, error) {
	if err := literal.validate(); err != nil {
		return 0, err
	}
	index := int64(registry.Intern(literal.Name))
	if literal.Negated {
		index = -index
	}
	return index, nil
}

// Translate converts symbolic clauses into the oracle's numeric form,
// scanning clauses in order, left to right. Repeated calls with identical
// input on fresh registries produce identical numbering.
func (registry *Registry) Translate(cnf CNF) ([][]int64, error) {
	clauses := make([][]int64, 0, len(cnf))
	for _, clause := range cnf {
		numeric := make([]int64, 0, len(clause))
		for _, literal := range clause {
			index, err := registry.Index(literal)
			if err != nil {
				return nil, err
			}
			numeric = append(numeric, index)
		}
		clauses = append(clauses, numeric)
	}
	return clauses, nil
}

// TranslateBack converts a numeric model into symbolic literals. An integer
// whose magnitude is unknown to the registry means the model came from a
// different (or stale) registry and is reported as ErrRegistryMismatch.
func (registry *Registry) TranslateBack(solution sat.SATSolution) (Model, error) {
	model := make(Model, 0, len(solution))
	for _, value := range solution {
		magnitude := value
		if magnitude < 0 {
			magnitude = -magnitude
		}
		name, ok := registry.Name(uint64(magnitude))
		if !ok {
			return nil, fmt.Errorf("%w: no variable registered under index %v", ErrRegistryMismatch, value)
		}
		model = append(model, Literal{Name: name, Negated: value < 0})
	}
	return model, nil
}

// Translate converts symbolic clauses into numeric form under a fresh
// registry and returns both, for callers that do not need stable numbering
// across multiple clause sets.
func Translate(cnf CNF) ([][]int64, *Registry, error) {
	registry := NewRegistry()
	clauses, err := registry.Translate(cnf)
	if err != nil {
		return nil, nil, err
	}
	return clauses, registry, nil
}
