// Package catalog implements the in-memory course catalog: a dual-index
// data layer holding one Course record per input line, indexed once for
// sorted enumeration and once for point lookup.
//
// The catalog is built by a single caller and read afterwards. It takes
// no locks — load must finish before queries are issued.
package catalog

import "fmt"

// Course is a single course record as parsed from the input source.
// Number is the unique identifier (e.g. "CS200"), Title the human-readable
// name. Prerequisites holds zero or more course numbers in input order;
// duplicates and self-references are preserved as given.
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// Iterator streams courses from a sorted enumeration. Each call to
// Catalog.List returns a fresh Iterator positioned at the start.
type Iterator interface {
	Next() (Course, bool)
	Close() error
}

// Warning reports a prerequisite reference that does not resolve to any
// loaded course. Warnings are informational — the owning course is still
// listed and queryable.
type Warning struct {
	Course  string // course number owning the dangling reference
	Missing string // prerequisite number absent from the catalog
}

func (w Warning) String() string {
	return fmt.Sprintf("course %s references missing prerequisite %s", w.Course, w.Missing)
}

// CourseNotFoundError is returned when looking up a course number that is
// not present in the catalog.
type CourseNotFoundError struct{ Number string }

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("course %q not found", e.Number)
}

// SourceError is returned when the input source cannot be opened or read.
// It is the only condition that aborts a load.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to read course data: %v", e.Err)
	}
	return fmt.Sprintf("unable to open file %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
