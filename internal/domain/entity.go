package domain

import (
	"strings"
	"time"
)

// EntityType names a kind of backend resource ("task", "target", "report").
// It is an opaque namespacing key and is never checked against a fixed list.
type EntityType string

// String implements fmt.Stringer.
func (t EntityType) String() string {
	return string(t)
}

// Validate rejects the empty type and types that cannot be used as a path
// segment. It does not restrict the type to a known set.
func (t EntityType) Validate() error {
	s := string(t)
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Fields: map[string]string{"entity_type": MsgRequired}}
	}
	if strings.ContainsAny(s, "/?# ") {
		return &ValidationError{Fields: map[string]string{"entity_type": "must be a single path segment"}}
	}
	return nil
}

// Entity is a single backend-managed resource instance such as one task or
// one target. Type-specific fields travel in Attributes.
type Entity struct {
	ID         string
	Name       string
	Comment    string
	Owner      string
	Writable   bool
	InUse      bool
	CreatedAt  time.Time
	ModifiedAt time.Time
	Attributes map[string]string
}

// Attribute returns the named type-specific attribute and whether it is set.
func (e *Entity) Attribute(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}
