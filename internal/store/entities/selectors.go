package entities

import "github.com/jsamuelsen11/scanconsole/internal/domain"

// TypeView is a read-only view of one entity type's state.
type TypeView struct {
	state TypeState
}

var _ LoadingView = TypeView{}

// Select returns the view of entityType in state. Unknown types yield an
// empty view.
func Select(state State, entityType domain.EntityType) TypeView {
	return TypeView{state: state[entityType]}
}

// IsLoadingCollection reports whether a load for filter is in flight.
func (v TypeView) IsLoadingCollection(filter *domain.Filter) bool {
	return v.state.collection(filter).Loading
}

// IsLoadingEntity reports whether entity id is being loaded.
func (v TypeView) IsLoadingEntity(id string) bool {
	return v.state.Loading[id]
}

// IsCollectionLoaded reports whether the collection for filter has been
// loaded successfully at least once.
func (v TypeView) IsCollectionLoaded(filter *domain.Filter) bool {
	return v.state.collection(filter).Loaded
}

// Entities returns the last loaded collection for filter in backend order,
// or nil if it has never been loaded.
func (v TypeView) Entities(filter *domain.Filter) []domain.Entity {
	c := v.state.collection(filter)
	if !c.Loaded {
		return nil
	}
	out := make([]domain.Entity, 0, len(c.IDs))
	for _, id := range c.IDs {
		if e, ok := v.state.ByID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// CollectionError returns the error of the last collection load for filter.
func (v TypeView) CollectionError(filter *domain.Filter) error {
	return v.state.collection(filter).Err
}

// Entity returns the entity with id, or nil if not loaded.
func (v TypeView) Entity(id string) *domain.Entity {
	e, ok := v.state.ByID[id]
	if !ok {
		return nil
	}
	return &e
}

// EntityError returns the error of the last load of entity id.
func (v TypeView) EntityError(id string) error {
	return v.state.Errors[id]
}
