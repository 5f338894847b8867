package college

import "testing"

func TestCourseRegistrationPKIsValueKey(t *testing.T) {
	a := NewCourseRegistrationPK(1, 2)
	b := CourseRegistrationPK{StudentID: 1, CourseID: 2}
	if !a.Equal(b) || a != b {
		t.Fatalf("expected %v == %v", a, b)
	}
	seen := map[CourseRegistrationPK]string{a: "first"}
	if got := seen[b]; got != "first" {
		t.Fatalf("map lookup by equal key: got %q", got)
	}
	if a.Equal(NewCourseRegistrationPK(2, 1)) {
		t.Fatalf("swapped components must not compare equal")
	}
}

func TestCourseRegistrationPKIsComplete(t *testing.T) {
	cases := []struct {
		pk   CourseRegistrationPK
		want bool
	}{
		{NewCourseRegistrationPK(1, 1), true},
		{NewCourseRegistrationPK(1, 0), false},
		{NewCourseRegistrationPK(0, 1), false},
		{CourseRegistrationPK{}, false},
	}
	for _, tc := range cases {
		if got := tc.pk.IsComplete(); got != tc.want {
			t.Fatalf("%s IsComplete: want=%v got=%v", tc.pk, tc.want, got)
		}
	}
}

func TestCourseRegistrationSettersTrackRelationIDs(t *testing.T) {
	s := (&Student{ID: 7}).SetFullName("John", "Smith")
	c := (&Course{ID: 3}).SetCourse("CST8277", "Enterprise Application Programming", 2022, TermAutumn, 3, 0)
	p := (&Professor{ID: 5}).SetProfessor("Teddy", "Yap", "Information and Communications Technology")

	r := (&CourseRegistration{}).SetStudent(s).SetCourse(c).SetProfessor(p).SetLetterGrade("A+").SetNumericGrade(100)
	if r.Key() != NewCourseRegistrationPK(7, 3) {
		t.Fatalf("key: got %s", r.Key())
	}
	if r.ProfessorID == nil || *r.ProfessorID != 5 {
		t.Fatalf("professor id: got %v", r.ProfessorID)
	}

	r.SetProfessor(nil)
	if r.ProfessorID != nil || r.Professor != nil {
		t.Fatalf("professor should be cleared")
	}
	r.SetCourse(nil)
	if r.Key().IsComplete() {
		t.Fatalf("key without course must be incomplete")
	}
}

func TestCourseRegistrationSyncRelationIDs(t *testing.T) {
	s := &Student{}
	c := &Course{}
	p := &Professor{}
	r := (&CourseRegistration{}).SetStudent(s).SetCourse(c).SetProfessor(p)
	if r.ProfessorID != nil {
		t.Fatalf("unsaved professor must not bind an id")
	}

	s.ID, c.ID, p.ID = 11, 12, 13
	r.SyncRelationIDs()
	if r.Key() != NewCourseRegistrationPK(11, 12) {
		t.Fatalf("key after sync: got %s", r.Key())
	}
	if r.ProfessorID == nil || *r.ProfessorID != 13 {
		t.Fatalf("professor id after sync: got %v", r.ProfessorID)
	}
}

func TestCourseRegistrationEqual(t *testing.T) {
	pid := int64(4)
	a := &CourseRegistration{CourseRegistrationPK: NewCourseRegistrationPK(1, 2), ProfessorID: &pid, LetterGrade: "A", NumericGrade: 85}
	otherPID := int64(4)
	b := &CourseRegistration{CourseRegistrationPK: NewCourseRegistrationPK(1, 2), ProfessorID: &otherPID, LetterGrade: "A", NumericGrade: 85}
	if !a.Equal(b) {
		t.Fatalf("expected equal registrations")
	}
	b.ProfessorID = nil
	if a.Equal(b) {
		t.Fatalf("professor presence must matter")
	}
	var nilReg *CourseRegistration
	if !nilReg.Equal(nil) || a.Equal(nil) {
		t.Fatalf("nil handling")
	}
}

func TestParseTerm(t *testing.T) {
	if got, ok := ParseTerm(" autumn "); !ok || got != TermAutumn {
		t.Fatalf("ParseTerm autumn: got=%q ok=%v", got, ok)
	}
	if _, ok := ParseTerm("FALL"); ok {
		t.Fatalf("FALL is not a term")
	}
	if Term("winter").Valid() {
		t.Fatalf("lower-case literal must not be valid")
	}
	if !TermSummer.Valid() {
		t.Fatalf("SUMMER must be valid")
	}
}
