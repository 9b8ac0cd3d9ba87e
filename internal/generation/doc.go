// Package generation submits podcast generation requests to the backend function.
// Requests are validated before they leave the process, each one carries a sequence
// number so that a newer request supersedes the result of an older one, identical
// requests cannot run twice at the same time, and every call runs under a deadline.
package generation
