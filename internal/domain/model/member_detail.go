package model

// GroupMemberDetail is one person's participation record within one group.
// It holds a non-owning reference to the person and the person's assignment
// grades. Assignment names are unique within a record; grading the same
// assignment again overwrites the previous score.
type GroupMemberDetail struct {
	person *Person
	grades map[string]float64
}

// NewGroupMemberDetail creates an empty participation record for person.
func NewGroupMemberDetail(person *Person) *GroupMemberDetail {
	return &GroupMemberDetail{
		person: person,
		grades: make(map[string]float64),
	}
}

// Person returns the person this record belongs to.
func (d *GroupMemberDetail) Person() *Person {
	return d.person
}

// GradeAssignment records score under assignment, overwriting any existing
// score for the same assignment name.
func (d *GroupMemberDetail) GradeAssignment(assignment string, score float64) {
	d.grades[assignment] = score
}

// Grade returns the recorded score for assignment and whether one exists.
func (d *GroupMemberDetail) Grade(assignment string) (float64, bool) {
	score, ok := d.grades[assignment]
	return score, ok
}

// Grades returns a copy of the full assignment-to-score mapping.
func (d *GroupMemberDetail) Grades() map[string]float64 {
	out := make(map[string]float64, len(d.grades))
	for assignment, score := range d.grades {
		out[assignment] = score
	}
	return out
}
