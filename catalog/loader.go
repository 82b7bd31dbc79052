package catalog

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Load reads course records from the comma-separated file at path into
// cat. If the file cannot be opened it returns a *SourceError and
// performs no insertions; any state cat already held is untouched.
//
// Load is additive: records merge into whatever cat already contains.
// Callers wanting replace semantics pass a fresh catalog.
//
// On success it returns the warnings from the post-load
// referential-integrity pass.
func Load(path string, cat *Catalog) ([]Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, cat)
}

// Read parses line-oriented course data from r into cat, then runs the
// referential-integrity pass over the resulting catalog.
//
// Line discipline: a line that is empty after line-ending removal is
// skipped; a line of only spaces is not. Each retained line is split on
// commas. Field 1 is the course number and field 2 the title, both kept
// verbatim — no trimming. Fields 3 onward are prerequisite numbers,
// trimmed of leading and trailing ASCII spaces (spaces only, not tabs);
// a prerequisite that trims to nothing is dropped. A line with fewer
// than two fields gets an empty title. Malformed lines are not rejected —
// correctness of field content is the data source's responsibility.
func Read(r io.Reader, cat *Catalog) ([]Warning, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		cat.Insert(ParseLine(line))
	}
	if err := sc.Err(); err != nil {
		return nil, &SourceError{Err: err}
	}
	return cat.Validate(), nil
}

// ParseLine parses one retained input line into a Course.
func ParseLine(line string) Course {
	fields := strings.Split(line, ",")
	course := Course{Number: fields[0]}
	if len(fields) > 1 {
		course.Title = fields[1]
	}
	if len(fields) > 2 {
		for _, field := range fields[2:] {
			prereq := strings.Trim(field, " ")
			if prereq != "" {
				course.Prerequisites = append(course.Prerequisites, prereq)
			}
		}
	}
	return course
}
