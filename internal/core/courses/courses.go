// Package courses registers the course catalogue with the core registry.
// Import this package to ensure all courses are registered.
package courses

import "github.com/JonMunkholm/applicants/internal/core"

func init() {
	for i, c := range []core.Course{
		{Key: "computer-science", Label: "Computer Science"},
		{Key: "business", Label: "Business"},
		{Key: "engineering", Label: "Engineering"},
		{Key: "medicine", Label: "Medicine"},
		{Key: "arts", Label: "Arts"},
	} {
		c.Order = i
		core.RegisterCourse(c)
	}
}
