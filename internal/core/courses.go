package core

import (
	"fmt"
	"sort"
	"sync"
)

// Course is an entry in the course catalogue offered on the applicant form.
type Course struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Order int    `json:"-"`
}

var (
	courses   = make(map[string]Course)
	coursesMu sync.RWMutex
)

// RegisterCourse adds a course to the catalogue.
// Panics if a course with the same key is already registered.
func RegisterCourse(c Course) {
	coursesMu.Lock()
	defer coursesMu.Unlock()

	if _, exists := courses[c.Key]; exists {
		panic(fmt.Sprintf("course already registered: %s", c.Key))
	}
	courses[c.Key] = c
}

// LookupCourse returns a course by key.
// Returns false if not found.
func LookupCourse(key string) (Course, bool) {
	coursesMu.RLock()
	defer coursesMu.RUnlock()

	c, ok := courses[key]
	return c, ok
}

// Courses returns all registered courses.
// Sorted by Order then by key for consistent ordering.
func Courses() []Course {
	coursesMu.RLock()
	defer coursesMu.RUnlock()

	result := make([]Course, 0, len(courses))
	for _, c := range courses {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Key < result[j].Key
	})

	return result
}

// CourseLabel returns the display label for key, or key itself when the
// course is not registered. Imported files may carry any course text.
func CourseLabel(key string) string {
	if c, ok := LookupCourse(key); ok {
		return c.Label
	}
	return key
}

// ClearCourses removes all registered courses.
// Primarily useful for testing.
func ClearCourses() {
	coursesMu.Lock()
	defer coursesMu.Unlock()
	courses = make(map[string]Course)
}
