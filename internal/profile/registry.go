package profile

import (
	"fmt"

	"invoscan/internal/domain"
)

// Registry is the process-wide supplier profile catalog. Iteration order is
// insertion order: supplier detection is first-match-wins over this order,
// so where a profile sits in the catalog is a deliberate tie-break policy.
// The registry is immutable after construction and safe for concurrent reads.
type Registry struct {
	codes    []string
	profiles map[string]*Profile
}

// NewRegistry builds a registry from profiles in the given order, validating
// every profile's patterns and group mappings up front.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]*Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.profiles[p.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate profile code %q", domain.ErrInvalidProfile, p.Code)
		}
		r.codes = append(r.codes, p.Code)
		r.profiles[p.Code] = p
	}
	return r, nil
}

// Get returns the profile for code. A missing code is a configuration
// defect, signalled with domain.ErrProfileNotFound — distinct from "no
// supplier detected", which Detect reports as an empty code.
func (r *Registry) Get(code string) (*Profile, error) {
	p, ok := r.profiles[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, code)
	}
	return p, nil
}

// All returns the profiles in insertion order.
func (r *Registry) All() []*Profile {
	out := make([]*Profile, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.profiles[code])
	}
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	return len(r.codes)
}

// Detect returns the code of the first profile (in registry order) whose
// identifier matches the document text, or "" when no profile matches.
// No match is a normal outcome: the caller proceeds on the generic path.
func (r *Registry) Detect(text string) string {
	for _, code := range r.codes {
		if r.profiles[code].Identifier.MatchString(text) {
			return code
		}
	}
	return ""
}
