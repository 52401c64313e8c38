// Package pipeline defines the error taxonomy shared by the organize
// pipeline stages. Fatal errors carry a sentinel marker so callers can
// classify failures without parsing messages; per-operation move failures
// are not errors at all and travel inside the run summary instead.
package pipeline
