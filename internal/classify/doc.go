// Package classify maps files to organization buckets: extension-derived
// categories, byte-size buckets, and the ignore rules for hidden and OS
// artifact files. The package performs no I/O; callers supply paths and
// sizes and receive pure classifications.
package classify
