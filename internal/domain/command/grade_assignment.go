package command

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// GradeAssignmentWord identifies the grade-assignment intent.
const GradeAssignmentWord = "grade-assignment"

// Messages produced by GradeAssignment.
const (
	msgGradeAssignmentSuccess = "Graded Assignment %s for %s, %s with %f score"
	msgPersonNotFound         = "Person not found: %s"
	msgGroupNotFound          = "Group not found: %s"
	msgNotAMember             = "%s is not a member of %s"
)

// GradeAssignment records one person's score for one assignment within one
// group. Grading is an in-place overwrite: repeating it with the same inputs
// leaves exactly the latest score stored.
type GradeAssignment struct {
	personName     string
	groupName      string
	assignmentName string
	score          float64
}

// NewGradeAssignment creates a GradeAssignment. All names are required and
// the score must be a finite value; any finite value, including negative,
// is accepted.
func NewGradeAssignment(personName, groupName, assignmentName string, score float64) (*GradeAssignment, error) {
	switch {
	case strings.TrimSpace(personName) == "":
		return nil, NewError(KindInvalidArgument, "person name is required")
	case strings.TrimSpace(groupName) == "":
		return nil, NewError(KindInvalidArgument, "group name is required")
	case strings.TrimSpace(assignmentName) == "":
		return nil, NewError(KindInvalidArgument, "assignment name is required")
	case math.IsNaN(score) || math.IsInf(score, 0):
		return nil, NewError(KindInvalidArgument, "score must be a finite number")
	}
	return &GradeAssignment{
		personName:     personName,
		groupName:      groupName,
		assignmentName: assignmentName,
		score:          score,
	}, nil
}

// Word returns the command word.
func (c *GradeAssignment) Word() string {
	return GradeAssignmentWord
}

// Execute resolves the person, the group, and the person's participation
// record, then records the score. Each missing link is its own distinct
// failure and nothing is mutated before all three resolve.
func (c *GradeAssignment) Execute(ctx context.Context, m Model) (Result, error) {
	person, err := m.Person(ctx, c.personName)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgPersonNotFound, c.personName)
	}
	group, err := m.Group(ctx, c.groupName)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgGroupNotFound, c.groupName)
	}
	detail, ok := group.MemberDetail(person)
	if !ok {
		return Result{}, Errorf(KindNotAMember, msgNotAMember, c.personName, c.groupName)
	}
	detail.GradeAssignment(c.assignmentName, c.score)
	return NewResult(fmt.Sprintf(msgGradeAssignmentSuccess,
		c.assignmentName, c.personName, c.groupName, c.score)), nil
}

// Equal reports value equality over every constructor field.
func (c *GradeAssignment) Equal(other *GradeAssignment) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.personName == other.personName &&
		c.groupName == other.groupName &&
		c.assignmentName == other.assignmentName &&
		c.score == other.score
}
