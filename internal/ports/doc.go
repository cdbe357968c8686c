// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Fetcher ports are implemented by outbound adapters (the management backend
// client, the Redis cache) and called by the loaders.
package ports
