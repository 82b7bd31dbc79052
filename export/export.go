// Package export publishes a loaded catalog to Postgres: one row per
// distinct course plus one row per prerequisite relation. Export is an
// explicit action — the in-memory catalog stays the source of truth.
package export

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"courseplan/catalog"
)

const createCourses = `CREATE TABLE IF NOT EXISTS courses (number TEXT PRIMARY KEY, title TEXT NOT NULL)`
const createPrerequisites = `CREATE TABLE IF NOT EXISTS prerequisites (course_number TEXT NOT NULL, prerequisite_number TEXT NOT NULL, position INT NOT NULL, PRIMARY KEY (course_number, position))`

const insertCourse = `INSERT INTO courses (number, title) VALUES ($1, $2) ON CONFLICT (number) DO UPDATE SET title=EXCLUDED.title`
const insertPrerequisite = `INSERT INTO prerequisites (course_number, prerequisite_number, position) VALUES ($1, $2, $3) ON CONFLICT (course_number, position) DO UPDATE SET prerequisite_number=EXCLUDED.prerequisite_number`

// Database wraps a pgx connection pool.
type Database struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool against the given DSN.
func Connect(ctx context.Context, url string) (*Database, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Database{Pool: pool}, nil
}

func (d *Database) Close() {
	d.Pool.Close()
}

// CreateSchema creates the courses and prerequisites tables if absent.
func (d *Database) CreateSchema(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, createCourses); err != nil {
		return err
	}
	_, err := d.Pool.Exec(ctx, createPrerequisites)
	return err
}

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

// InsertCourses batch-upserts the given courses and their prerequisite
// relations.
func (d *Database) InsertCourses(ctx context.Context, courses []catalog.Course) error {
	if len(courses) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, course := range courses {
		queuedQueries = append(queuedQueries, batch.Queue(insertCourse, course.Number, course.Title))
		for position, prereq := range course.Prerequisites {
			queuedQueries = append(queuedQueries, batch.Queue(insertPrerequisite, course.Number, prereq, position))
		}
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(ctx, &batch).Close(); err != nil {
		return err
	}

	return nil
}

// Export creates the schema and upserts every distinct course in cat.
// It returns the number of courses written.
func (d *Database) Export(ctx context.Context, cat *catalog.Catalog) (int, error) {
	if err := d.CreateSchema(ctx); err != nil {
		return 0, err
	}
	courses := snapshot(cat)
	if err := d.InsertCourses(ctx, courses); err != nil {
		return 0, err
	}
	return len(courses), nil
}

// snapshot returns the catalog's distinct courses in ascending number
// order. The ordered index revisits duplicate numbers, so each number is
// resolved once through the direct index, which holds the surviving
// record.
func snapshot(cat *catalog.Catalog) []catalog.Course {
	courses := make([]catalog.Course, 0, cat.Len())
	seen := make(map[string]bool, cat.Len())
	it := cat.List()
	defer it.Close()
	for {
		course, ok := it.Next()
		if !ok {
			break
		}
		if seen[course.Number] {
			continue
		}
		seen[course.Number] = true
		if final, err := cat.Find(course.Number); err == nil {
			courses = append(courses, final)
		}
	}
	return courses
}
