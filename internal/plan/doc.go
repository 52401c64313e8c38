// Package plan turns a candidate file list and an organization mode into an
// ordered list of move operations. Planning reads file metadata but never
// mutates the filesystem, so a plan can be rebuilt any number of times for
// the same inputs.
package plan
