// Package menu implements the interactive surface of the course planner:
// a line-oriented menu loop that drives the catalog through its three
// core actions (load, list, lookup) plus export and stats.
//
// The session owns one long-lived catalog across repeated actions. A
// repeated load merges into it by default; reload_mode=reset swaps in a
// fresh catalog before each load instead.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"courseplan/catalog"
	"courseplan/config"
	"courseplan/export"
	"courseplan/scrape"
)

const exportTimeout = 30 * time.Second

// Session runs the menu loop for a single user over an input/output pair.
type Session struct {
	cfg    *config.Config
	cat    *catalog.Catalog
	in     *bufio.Scanner
	out    io.Writer
	loaded bool

	warnColor *color.Color
	errColor  *color.Color
}

// New creates a session reading menu choices from in and writing to out.
func New(cfg *config.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:       cfg,
		cat:       catalog.New(),
		in:        bufio.NewScanner(in),
		out:       out,
		warnColor: color.New(color.FgYellow),
		errColor:  color.New(color.FgRed),
	}
}

// Catalog exposes the session's current catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Run executes the menu loop until the user exits or input ends.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Welcome to the course planner.")

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1. Load Data Structure.")
		fmt.Fprintln(s.out, "2. Print Course List.")
		fmt.Fprintln(s.out, "3. Print Course.")
		fmt.Fprintln(s.out, "4. Export Course Catalog.")
		fmt.Fprintln(s.out, "5. Show Catalog Stats.")
		fmt.Fprintln(s.out, "9. Exit")
		fmt.Fprint(s.out, "\nWhat would you like to do? ")

		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "\nPlease enter a number from the menu.")
			continue
		}

		switch choice {
		case 1:
			s.load()
		case 2:
			s.printCourseList()
		case 3:
			s.printCourse()
		case 4:
			s.exportCatalog()
		case 5:
			s.printStats()
		case 9:
			fmt.Fprintln(s.out, "Thank you for using the course planner!")
			return nil
		default:
			fmt.Fprintf(s.out, "\n%d is not a valid option.\n", choice)
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// requireLoaded gates actions that only make sense after a load.
func (s *Session) requireLoaded() bool {
	if !s.loaded {
		s.errColor.Fprintln(s.out, "\nError: No course data loaded. Please load data first.")
		return false
	}
	return true
}

func (s *Session) load() {
	fmt.Fprintf(s.out, "Enter the file name (press Enter to use default file - %s): ", s.cfg.File)
	path, _ := s.readLine()
	if path == "" {
		path = s.cfg.File
		fmt.Fprintf(s.out, "Using default file: %s\n", path)
	}

	cat := s.cat
	if s.cfg.ReloadMode == config.ReloadReset {
		cat = catalog.New()
	}

	warnings, err := loadFile(path, cat)
	if err != nil {
		s.errColor.Fprintln(s.out, err)
		return
	}

	s.cat = cat
	s.loaded = true
	for _, w := range warnings {
		s.warnColor.Fprintf(s.out, "Warning: %s\n", w)
	}
	fmt.Fprintln(s.out, "Course data loaded successfully.")
}

// loadFile dispatches to the HTML scraper for .html/.htm inputs and to
// the line loader otherwise.
func loadFile(path string, cat *catalog.Catalog) ([]catalog.Warning, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return scrape.Load(path, cat)
	default:
		return catalog.Load(path, cat)
	}
}

func (s *Session) printCourseList() {
	if !s.requireLoaded() {
		return
	}
	fmt.Fprintln(s.out, "\nHere is a sample schedule:")
	fmt.Fprintln(s.out)
	it := s.cat.List()
	defer it.Close()
	for {
		course, ok := it.Next()
		if !ok {
			return
		}
		fmt.Fprintf(s.out, "%s, %s\n", course.Number, course.Title)
	}
}

func (s *Session) printCourse() {
	if !s.requireLoaded() {
		return
	}
	fmt.Fprint(s.out, "What course do you want to know about? ")
	input, _ := s.readLine()

	// Lookups are exact; uppercasing here reduces mismatches without
	// touching what the catalog stores.
	course, err := s.cat.Find(strings.ToUpper(input))
	if err != nil {
		var notFound *catalog.CourseNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(s.out, "Course not found.")
			return
		}
		s.errColor.Fprintln(s.out, err)
		return
	}

	fmt.Fprintf(s.out, "%s, %s\n", course.Number, course.Title)
	if len(course.Prerequisites) == 0 {
		fmt.Fprintln(s.out, "Prerequisites: None")
		return
	}
	fmt.Fprintf(s.out, "Prerequisites: %s\n", strings.Join(course.Prerequisites, ", "))
}

func (s *Session) exportCatalog() {
	if !s.requireLoaded() {
		return
	}
	if s.cfg.DatabaseURL == "" {
		fmt.Fprintln(s.out, "Export is not configured. Set database_url to enable it.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	db, err := export.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		s.errColor.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	defer db.Close()

	n, err := db.Export(ctx, s.cat)
	if err != nil {
		s.errColor.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Exported %d courses.\n", n)
}

func (s *Session) printStats() {
	if !s.requireLoaded() {
		return
	}
	fmt.Fprintf(s.out, "\nCourses: %d distinct, %d records loaded, index height %d.\n",
		s.cat.Len(), s.cat.Size(), s.cat.Height())
}
