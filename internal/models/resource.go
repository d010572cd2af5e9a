package models

import (
	"fmt"
	"iter"
	"strings"
)

// Resource is a raw material category that workers gather
type Resource uint8

const (
	Iron Resource = iota
	Copper
	Stone

	// ResourceCount is the number of resource categories
	ResourceCount = int(Stone) + 1
)

// AllResources returns all resources in ordinal order
func AllResources() []Resource {
	return []Resource{Iron, Copper, Stone}
}

// String returns the display name of the resource
func (r Resource) String() string {
	switch r {
	case Iron:
		return "Iron"
	case Copper:
		return "Copper"
	case Stone:
		return "Stone"
	default:
		return fmt.Sprintf("Resource(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the declared resources
func (r Resource) Valid() bool {
	return int(r) < ResourceCount
}

// ParseResource converts a case-insensitive name into a Resource
func ParseResource(name string) (Resource, error) {
	for _, r := range AllResources() {
		if strings.EqualFold(r.String(), strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// ResourceNames returns the display names in ordinal order
func ResourceNames() []string {
	names := make([]string, 0, ResourceCount)
	for _, r := range AllResources() {
		names = append(names, r.String())
	}
	return names
}

// ResourceAmount holds one unsigned counter per resource.
// The zero value is an empty stockpile.
type ResourceAmount struct {
	counts [ResourceCount]uint32
}

// Amount returns a ResourceAmount holding n units of a single resource
func Amount(r Resource, n uint32) ResourceAmount {
	var a ResourceAmount
	a.counts[r] = n
	return a
}

// NewResourceAmount builds an amount from a per-resource map
func NewResourceAmount(values map[Resource]uint32) ResourceAmount {
	var a ResourceAmount
	for r, n := range values {
		a.counts[r] = n
	}
	return a
}

// Get returns the counter for r
func (a ResourceAmount) Get(r Resource) uint32 {
	return a.counts[r]
}

// Ptr exposes the counter for r so the gathering step can increment it in place
func (a *ResourceAmount) Ptr(r Resource) *uint32 {
	return &a.counts[r]
}

// Add increments the counter for r by n
func (a *ResourceAmount) Add(r Resource, n uint32) {
	a.counts[r] += n
}

// HasAvailable reports whether every counter covers the required amount
func (a ResourceAmount) HasAvailable(required ResourceAmount) bool {
	for i := range a.counts {
		if a.counts[i] < required.counts[i] {
			return false
		}
	}
	return true
}

// Consume subtracts required from every counter, or does nothing and
// returns false if any counter is short.
func (a *ResourceAmount) Consume(required ResourceAmount) bool {
	if !a.HasAvailable(required) {
		return false
	}
	for i := range a.counts {
		a.counts[i] -= required.counts[i]
	}
	return true
}

// IsZero reports whether all counters are zero
func (a ResourceAmount) IsZero() bool {
	return a == ResourceAmount{}
}

// All iterates over (resource, count) pairs in ordinal order
func (a ResourceAmount) All() iter.Seq2[Resource, uint32] {
	return func(yield func(Resource, uint32) bool) {
		for i, n := range a.counts {
			if !yield(Resource(i), n) {
				return
			}
		}
	}
}

// Counts returns a snapshot of the counters in ordinal order
func (a ResourceAmount) Counts() []uint32 {
	out := make([]uint32, ResourceCount)
	copy(out, a.counts[:])
	return out
}

func (a ResourceAmount) String() string {
	var sb strings.Builder
	for r, n := range a.All() {
		fmt.Fprintf(&sb, "%s: %d\t", r, n)
	}
	return sb.String()
}
