package ir

// Set accumulates enum definitions over one compilation run, preserving
// definition order and rejecting duplicate names. A run may span several
// input files; names collide across files just like within one.
type Set struct {
	enums  []*Enum
	byName map[string]*Enum
}

// NewSet creates an empty definition set.
func NewSet() *Set {
	return &Set{byName: make(map[string]*Enum)}
}

// Add appends an enum definition, failing on a duplicate name.
func (s *Set) Add(e *Enum) error {
	if _, ok := s.byName[e.Name]; ok {
		return Errorf(CodeDuplicateEnum, "duplicate enum name: %s", e.Name)
	}
	s.enums = append(s.enums, e)
	s.byName[e.Name] = e
	return nil
}

// Enums returns all definitions in the order they were added.
func (s *Set) Enums() []*Enum {
	return s.enums
}

// Lookup returns the definition with the given name, or nil.
func (s *Set) Lookup(name string) *Enum {
	return s.byName[name]
}

// Len returns the number of definitions in the set.
func (s *Set) Len() int {
	return len(s.enums)
}
