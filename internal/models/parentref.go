package models

import (
	"errors"
	"fmt"
)

// ParentKind names the kind of entity a task or note hangs off
type ParentKind string

const (
	ParentClient  ParentKind = "client"
	ParentLead    ParentKind = "lead"
	ParentGeneral ParentKind = "general"
)

// ErrInvalidParent is returned when a related_to/related_id pair cannot be
// resolved to a parent reference
var ErrInvalidParent = errors.New("invalid parent reference")

// ParentRef is the single source of truth for a record's parent: a tagged
// variant over {Client(id), Lead(id), General}. The wire format carries the
// pair (related_to, related_id); the storage layer encodes the variant into
// typed foreign key columns. Parse and the Apply* methods on Task/Note are
// the only places the two representations meet.
type ParentRef struct {
	Kind ParentKind
	ID   string
}

// ParseParentRef validates a (related_to, related_id) pair and builds the
// corresponding ParentRef. Concrete kinds require an id; general forbids
// one. allowGeneral is false for notes, which must always have a parent.
func ParseParentRef(relatedTo string, relatedID string, allowGeneral bool) (ParentRef, error) {
	switch ParentKind(relatedTo) {
	case ParentClient, ParentLead:
		if relatedID == "" {
			return ParentRef{}, fmt.Errorf("%w: related_to=%q requires related_id", ErrInvalidParent, relatedTo)
		}
		return ParentRef{Kind: ParentKind(relatedTo), ID: relatedID}, nil
	case ParentGeneral:
		if !allowGeneral {
			return ParentRef{}, fmt.Errorf("%w: related_to=%q is not allowed here", ErrInvalidParent, relatedTo)
		}
		return ParentRef{Kind: ParentGeneral}, nil
	default:
		return ParentRef{}, fmt.Errorf("%w: unknown related_to %q", ErrInvalidParent, relatedTo)
	}
}

// IsConcrete reports whether the reference names an actual parent row
func (r ParentRef) IsConcrete() bool {
	return r.Kind == ParentClient || r.Kind == ParentLead
}
