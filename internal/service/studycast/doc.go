// Package studycast implements the library, queue, generation, saved podcast
// and profile operations of the StudyCast command line client.
package studycast
