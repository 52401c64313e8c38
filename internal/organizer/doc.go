// Package organizer drives the organize pipeline: scan, filter, plan,
// preview, and (outside dry runs) execute. It owns the only filesystem
// side effects in the program.
package organizer
