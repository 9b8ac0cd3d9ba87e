// Package supabase is the client of the hosted StudyCast backend: the REST table
// endpoints for podcast and profile rows, the GraphQL endpoint for profile reads,
// the generate-podcast function and plain downloads of rendered audio.
// Rows read by id are kept in an LRU cache until they change.
package supabase
