package export

import (
	"testing"

	"courseplan/catalog"
)

func TestSnapshot_SortedDistinct(t *testing.T) {
	cat := catalog.New()
	cat.Insert(catalog.Course{Number: "CS300", Title: "Algorithms", Prerequisites: []string{"CS200"}})
	cat.Insert(catalog.Course{Number: "CS100", Title: "Intro"})
	cat.Insert(catalog.Course{Number: "CS200", Title: "old title"})
	cat.Insert(catalog.Course{Number: "CS200", Title: "Data Structures", Prerequisites: []string{"CS100"}})

	courses := snapshot(cat)
	wantNumbers := []string{"CS100", "CS200", "CS300"}
	if len(courses) != len(wantNumbers) {
		t.Fatalf("snapshot has %d courses, want %d", len(courses), len(wantNumbers))
	}
	for i, want := range wantNumbers {
		if courses[i].Number != want {
			t.Errorf("position %d: %q, want %q", i, courses[i].Number, want)
		}
	}

	// The duplicate resolves to the last-inserted record.
	if courses[1].Title != "Data Structures" {
		t.Errorf("CS200 title %q, want %q", courses[1].Title, "Data Structures")
	}
	if len(courses[1].Prerequisites) != 1 || courses[1].Prerequisites[0] != "CS100" {
		t.Errorf("CS200 prerequisites %v, want [CS100]", courses[1].Prerequisites)
	}
}

func TestSnapshot_Empty(t *testing.T) {
	if courses := snapshot(catalog.New()); len(courses) != 0 {
		t.Fatalf("snapshot of empty catalog has %d courses", len(courses))
	}
}
