package catalog

// Catalog pairs the ordered index with the direct index. Both are
// populated from the same ingestion pass and reflect the same set of
// accepted lines, with one documented divergence: the tree retains every
// insert under a duplicate number while the map keeps only the last.
//
// The lookup responsibility is deliberately split — the tree exists for
// sorted enumeration, the map for O(1) point lookup.
type Catalog struct {
	tree     tree
	byNumber map[string]Course
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byNumber: make(map[string]Course)}
}

// Insert adds a course to both indexes as one step: ordered index first,
// then direct index. Inserting a number that already exists keeps both
// records in the tree but overwrites the map entry (last write wins).
func (c *Catalog) Insert(course Course) {
	c.tree.insert(course)
	c.byNumber[course.Number] = course
}

// Find looks up a course by exact number in the direct index. No
// normalization — callers fold case before calling if they want to.
// Returns a *CourseNotFoundError when the number is absent.
func (c *Catalog) Find(number string) (Course, error) {
	course, ok := c.byNumber[number]
	if !ok {
		return Course{}, &CourseNotFoundError{Number: number}
	}
	return course, nil
}

// List returns a fresh iterator over all records in ascending number
// order. Records sharing a number appear consecutively in insertion
// order. An empty catalog yields an empty sequence.
func (c *Catalog) List() Iterator {
	return c.tree.inOrder()
}

// Len reports the number of distinct course numbers in the catalog.
func (c *Catalog) Len() int {
	return len(c.byNumber)
}

// Size reports the total number of records inserted, counting every
// record retained by the ordered index (duplicates included).
func (c *Catalog) Size() int {
	return c.tree.size
}

// Height reports the ordered index depth, mostly of diagnostic interest.
func (c *Catalog) Height() int {
	return c.tree.height()
}

// Validate runs the referential-integrity pass: every prerequisite of
// every record in the direct index must itself resolve in the direct
// index. Each dangling reference yields one Warning. The pass sees final
// direct-index state only — when a duplicate number overwrote an earlier
// record, only the surviving record's prerequisites are checked.
//
// Warnings are ordered by owning course number, preserving each course's
// prerequisite input order within that.
func (c *Catalog) Validate() []Warning {
	var warnings []Warning
	it := c.List()
	defer it.Close()
	seen := make(map[string]bool, len(c.byNumber))
	for {
		course, ok := it.Next()
		if !ok {
			break
		}
		// The tree revisits duplicate numbers; validate each number once,
		// against the record the direct index actually holds.
		if seen[course.Number] {
			continue
		}
		seen[course.Number] = true
		final := c.byNumber[course.Number]
		for _, prereq := range final.Prerequisites {
			if _, ok := c.byNumber[prereq]; !ok {
				warnings = append(warnings, Warning{Course: final.Number, Missing: prereq})
			}
		}
	}
	return warnings
}
