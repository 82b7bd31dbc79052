// Package scrape ingests course records from an HTML catalog export.
// It is the alternate loader used when the input file is an .html page
// rather than the comma-separated format.
//
// The expected markup is a table with class "courses" whose body rows
// carry three cells: course number, title, and a comma-separated list of
// prerequisite numbers.
package scrape

import (
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"courseplan/catalog"
)

// Courses parses an HTML document from r and returns one Course per table
// row. Rows without cells (e.g. header rows) are skipped. Field handling
// matches the line loader: number and title are kept verbatim from the
// cell text, prerequisite entries are trimmed of ASCII spaces and dropped
// when empty.
func Courses(r io.Reader) ([]catalog.Course, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var courses []catalog.Course
	rows := document.Find("table.courses").Find("tbody").Find("tr")
	for _, root := range rows.Nodes {
		row := goquery.NewDocumentFromNode(root)
		cells := row.Find("td")
		if cells.Length() == 0 {
			continue
		}

		course := catalog.Course{Number: cells.Eq(0).Text()}
		if cells.Length() > 1 {
			course.Title = cells.Eq(1).Text()
		}
		if cells.Length() > 2 {
			for _, field := range strings.Split(cells.Eq(2).Text(), ",") {
				prereq := strings.Trim(field, " ")
				if prereq != "" {
					course.Prerequisites = append(course.Prerequisites, prereq)
				}
			}
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// Load reads the HTML file at path into cat and runs the same
// referential-integrity pass as the line loader. Open and parse failures
// surface as a *catalog.SourceError with no insertions performed.
func Load(path string, cat *catalog.Catalog) ([]catalog.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &catalog.SourceError{Path: path, Err: err}
	}
	defer f.Close()

	courses, err := Courses(f)
	if err != nil {
		return nil, &catalog.SourceError{Path: path, Err: err}
	}
	for _, course := range courses {
		cat.Insert(course)
	}
	return cat.Validate(), nil
}
