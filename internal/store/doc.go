// Package store defines the rows read from the backend and the Store interface
// that every backend (hosted REST tables or a self-hosted SQL database) implements.
package store
