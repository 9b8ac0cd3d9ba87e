// Package library holds the embedded StudyCast catalog and turns catalog subtopics and saved
// recordings into player descriptors: topic filters, per-subtopic mode preferences,
// descriptor builders and the grouping of saved recordings.
package library
