package entities

import (
	"fmt"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/store"
)

// Kind discriminates the six lifecycle actions.
type Kind int

// The closed set of lifecycle action kinds.
const (
	KindRequestCollection Kind = iota + 1
	KindSuccessCollection
	KindErrorCollection
	KindRequestEntity
	KindSuccessEntity
	KindErrorEntity
)

// String returns the action type name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindRequestCollection:
		return "ENTITIES_LOADING_REQUEST"
	case KindSuccessCollection:
		return "ENTITIES_LOADING_SUCCESS"
	case KindErrorCollection:
		return "ENTITIES_LOADING_ERROR"
	case KindRequestEntity:
		return "ENTITY_LOADING_REQUEST"
	case KindSuccessEntity:
		return "ENTITY_LOADING_SUCCESS"
	case KindErrorEntity:
		return "ENTITY_LOADING_ERROR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsCollection reports whether k is one of the collection kinds.
func (k Kind) IsCollection() bool {
	return k >= KindRequestCollection && k <= KindErrorCollection
}

// Action is a lifecycle action. Which fields are meaningful depends on Kind:
//
//	RequestCollection  EntityType, Filter
//	SuccessCollection  EntityType, Filter, Entities
//	ErrorCollection    EntityType, Filter, Err
//	RequestEntity      EntityType, ID
//	SuccessEntity      EntityType, ID, Entity
//	ErrorEntity        EntityType, ID, Err
//
// Filter is nil when the action targets the default collection.
type Action struct {
	Kind       Kind
	EntityType domain.EntityType
	Filter     *domain.Filter
	ID         string
	Entities   []domain.Entity
	Entity     *domain.Entity
	Err        error
}

var _ store.Action = Action{}

// Name implements store.Action.
func (a Action) Name() string {
	return a.Kind.String()
}

// CollectionActions creates the lifecycle actions for collections of one
// entity type. All methods are pure.
type CollectionActions struct {
	EntityType domain.EntityType
}

// NewCollectionActions returns the collection action creators for entityType.
func NewCollectionActions(entityType domain.EntityType) CollectionActions {
	return CollectionActions{EntityType: entityType}
}

// Request creates a RequestCollection action. A nil filter is omitted.
func (c CollectionActions) Request(filter *domain.Filter) Action {
	return Action{Kind: KindRequestCollection, EntityType: c.EntityType, Filter: copyFilter(filter)}
}

// Success creates a SuccessCollection action carrying data in backend order.
func (c CollectionActions) Success(data []domain.Entity, filter *domain.Filter) Action {
	return Action{Kind: KindSuccessCollection, EntityType: c.EntityType, Entities: data, Filter: copyFilter(filter)}
}

// Error creates an ErrorCollection action carrying err unchanged.
func (c CollectionActions) Error(err error, filter *domain.Filter) Action {
	return Action{Kind: KindErrorCollection, EntityType: c.EntityType, Err: err, Filter: copyFilter(filter)}
}

// EntityActions creates the lifecycle actions for single entities of one
// entity type. All methods are pure and always carry the id.
type EntityActions struct {
	EntityType domain.EntityType
}

// NewEntityActions returns the single-entity action creators for entityType.
func NewEntityActions(entityType domain.EntityType) EntityActions {
	return EntityActions{EntityType: entityType}
}

// Request creates a RequestEntity action.
func (e EntityActions) Request(id string) Action {
	return Action{Kind: KindRequestEntity, EntityType: e.EntityType, ID: id}
}

// Success creates a SuccessEntity action.
func (e EntityActions) Success(id string, data *domain.Entity) Action {
	return Action{Kind: KindSuccessEntity, EntityType: e.EntityType, ID: id, Entity: data}
}

// Error creates an ErrorEntity action carrying err unchanged.
func (e EntityActions) Error(id string, err error) Action {
	return Action{Kind: KindErrorEntity, EntityType: e.EntityType, ID: id, Err: err}
}

// copyFilter detaches the action from the caller's variable. Filter is an
// immutable value, so a shallow copy is enough.
func copyFilter(f *domain.Filter) *domain.Filter {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
