package catalog

import (
	"math/rand"
	"sort"
	"testing"
)

// collect drains an iterator into a slice of course numbers.
func collect(t *testing.T, it Iterator) []string {
	t.Helper()
	var numbers []string
	for {
		course, ok := it.Next()
		if !ok {
			break
		}
		numbers = append(numbers, course.Number)
	}
	it.Close()
	return numbers
}

func TestTree_InOrderSorted(t *testing.T) {
	var tr tree
	for _, n := range []string{"CS300", "CS100", "MATH201", "CS200", "CS101"} {
		tr.insert(Course{Number: n})
	}

	got := collect(t, tr.inOrder())
	want := []string{"CS100", "CS101", "CS200", "CS300", "MATH201"}
	if len(got) != len(want) {
		t.Fatalf("enumerated %d courses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTree_InOrderSortedRandom(t *testing.T) {
	numbers := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		numbers = append(numbers, "CS"+string(rune('A'+i%26))+string(rune('A'+(i/26)%26)))
	}
	rand.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	var tr tree
	for _, n := range numbers {
		tr.insert(Course{Number: n})
	}

	got := collect(t, tr.inOrder())
	if !sort.StringsAreSorted(got) {
		t.Fatalf("enumeration not sorted: %v", got)
	}
	if len(got) != len(numbers) {
		t.Fatalf("enumerated %d courses, want %d", len(got), len(numbers))
	}
}

// Duplicate numbers descend right, so the walk visits them consecutively
// and in insertion order.
func TestTree_DuplicatesInsertionOrder(t *testing.T) {
	var tr tree
	tr.insert(Course{Number: "CS200", Title: "first"})
	tr.insert(Course{Number: "CS100"})
	tr.insert(Course{Number: "CS200", Title: "second"})
	tr.insert(Course{Number: "CS300"})
	tr.insert(Course{Number: "CS200", Title: "third"})

	it := tr.inOrder()
	defer it.Close()
	var courses []Course
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		courses = append(courses, c)
	}

	wantNumbers := []string{"CS100", "CS200", "CS200", "CS200", "CS300"}
	wantTitles := []string{"", "first", "second", "third", ""}
	if len(courses) != len(wantNumbers) {
		t.Fatalf("enumerated %d courses, want %d", len(courses), len(wantNumbers))
	}
	for i, c := range courses {
		if c.Number != wantNumbers[i] {
			t.Errorf("position %d: number %q, want %q", i, c.Number, wantNumbers[i])
		}
		if c.Title != wantTitles[i] {
			t.Errorf("position %d: title %q, want %q", i, c.Title, wantTitles[i])
		}
	}
}

func TestTree_EmptyEnumeration(t *testing.T) {
	var tr tree
	it := tr.inOrder()
	if _, ok := it.Next(); ok {
		t.Fatal("empty tree should yield no courses")
	}
	it.Close()
}

// Each inOrder call is an independent enumeration.
func TestTree_Restartable(t *testing.T) {
	var tr tree
	tr.insert(Course{Number: "CS200"})
	tr.insert(Course{Number: "CS100"})

	first := collect(t, tr.inOrder())
	second := collect(t, tr.inOrder())
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("enumerations of length %d and %d, want 2 and 2", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestTree_Height(t *testing.T) {
	var tr tree
	if h := tr.height(); h != 0 {
		t.Fatalf("empty tree height %d, want 0", h)
	}
	// Ascending inserts degrade to a right chain.
	for _, n := range []string{"CS100", "CS200", "CS300"} {
		tr.insert(Course{Number: n})
	}
	if h := tr.height(); h != 3 {
		t.Fatalf("chain height %d, want 3", h)
	}
}
