// Package store persists the enable-spec of a debug environment between runs.
//
// A [Store] holds exactly one string. [Env] keeps it in an environment
// variable (DEBUG by default), [File] in a small YAML document, and [Memory]
// in process memory:
//
//	s := store.File{Path: store.DefaultPath()}
//	err := s.Save("app:*,-app:noisy")
//	spec, err := s.Load() // "app:*,-app:noisy"
//
// The YAML document is validated against a JSON Schema derived from
// [Document] before it is decoded, so a hand-edited file with a misspelled key
// or a non-string value is reported as [ErrInvalidDocument] instead of being
// silently ignored.
//
// Saving an empty spec removes the stored value.
package store
