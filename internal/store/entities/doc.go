// Package entities implements loading state for backend entities: the
// request/success/error action triplets, the loaders that guard against
// duplicate in-flight fetches, and the reducer and selectors over the
// normalized entity state.
//
// Collections are keyed by filter. A nil filter is the default collection
// and is tracked separately from any explicit filter, including the empty
// one. Single entities are keyed by ID.
//
//	loader := entities.NewCollectionLoader[app.State]("task", entities.NewCollectionActions("task"), selectTasks, logger)
//	outcome := loader.Load(ctx, entities.NewEnv(fetcher, st), &filter)
package entities
