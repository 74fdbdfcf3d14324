package core

import "testing"

func withCourses(t *testing.T, list ...Course) {
	t.Helper()
	ClearCourses()
	for _, c := range list {
		RegisterCourse(c)
	}
	t.Cleanup(ClearCourses)
}

func TestCourses_Ordering(t *testing.T) {
	withCourses(t,
		Course{Key: "medicine", Label: "Medicine", Order: 2},
		Course{Key: "arts", Label: "Arts", Order: 0},
		Course{Key: "business", Label: "Business", Order: 1},
	)

	got := Courses()
	want := []string{"arts", "business", "medicine"}
	if len(got) != len(want) {
		t.Fatalf("Courses() returned %d entries, want %d", len(got), len(want))
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("Courses()[%d].Key = %q, want %q", i, got[i].Key, key)
		}
	}
}

func TestRegisterCourse_DuplicatePanics(t *testing.T) {
	withCourses(t, Course{Key: "arts", Label: "Arts"})

	defer func() {
		if recover() == nil {
			t.Error("RegisterCourse with duplicate key did not panic")
		}
	}()
	RegisterCourse(Course{Key: "arts", Label: "Fine Arts"})
}

func TestCourseLabel(t *testing.T) {
	withCourses(t, Course{Key: "computer-science", Label: "Computer Science"})

	if got := CourseLabel("computer-science"); got != "Computer Science" {
		t.Errorf("CourseLabel(registered) = %q, want %q", got, "Computer Science")
	}
	if got := CourseLabel("Underwater Basketry"); got != "Underwater Basketry" {
		t.Errorf("CourseLabel(unknown) = %q, want key echoed", got)
	}
}
