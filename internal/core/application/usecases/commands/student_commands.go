package commands

import (
	"errors"
	"fmt"

	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"
)

var (
	ErrSaveStudentCommandIsNotConstructed = errors.New(
		"SaveStudentCommand must be created via NewCreateStudentCommand or NewUpdateStudentCommand",
	)
	ErrRegisterStudentCommandIsNotConstructed = errors.New(
		"RegisterStudentCommand must be created via NewRegisterStudentCommand constructor",
	)
	ErrBulkUpdateGradeCommandIsNotConstructed = errors.New(
		"BulkUpdateGradeCommand must be created via NewBulkUpdateGradeCommand constructor",
	)
	ErrDeleteStudentCommandIsNotConstructed = errors.New(
		"DeleteStudentCommand must be created via NewDeleteStudentCommand constructor",
	)
)

// StudentProfile is the editable part of a roster entry.
type StudentProfile struct {
	Name      string
	ClassName string
	Grade     int
	IsActive  bool
}

// SaveStudentCommand creates or updates a roster entry on behalf of staff.
// Field rules are enforced by the student aggregate.
type SaveStudentCommand struct { //nolint:recvcheck //using for validation
	actorID   string
	studentID string
	profile   StudentProfile

	guard guard.ConstructorGuard
}

// NewCreateStudentCommand adds studentID, the identity provider's user id,
// to the roster.
func NewCreateStudentCommand(actorID, studentID string, profile StudentProfile) (SaveStudentCommand, error) {
	return newSaveStudentCommand(actorID, studentID, profile)
}

func NewUpdateStudentCommand(actorID, studentID string, profile StudentProfile) (SaveStudentCommand, error) {
	return newSaveStudentCommand(actorID, studentID, profile)
}

func newSaveStudentCommand(actorID, studentID string, profile StudentProfile) (SaveStudentCommand, error) {
	if actorID == "" {
		return SaveStudentCommand{}, ErrActorIsRequired
	}
	if studentID == "" {
		return SaveStudentCommand{}, errs.NewValueIsRequiredError("studentId")
	}
	return SaveStudentCommand{
		actorID:   actorID,
		studentID: studentID,
		profile:   profile,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SaveStudentCommand) Validate() error {
	return c.guard.Validate(ErrSaveStudentCommandIsNotConstructed)
}

func (c SaveStudentCommand) ActorID() string         { return c.actorID }
func (c SaveStudentCommand) StudentID() string       { return c.studentID }
func (c SaveStudentCommand) Profile() StudentProfile { return c.profile }

// RegisterStudentCommand creates the caller's own placeholder roster entry
// on first sign-in.
type RegisterStudentCommand struct { //nolint:recvcheck //using for validation
	actorID string

	guard guard.ConstructorGuard
}

func NewRegisterStudentCommand(actorID string) (RegisterStudentCommand, error) {
	if actorID == "" {
		return RegisterStudentCommand{}, ErrActorIsRequired
	}
	return RegisterStudentCommand{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterStudentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStudentCommandIsNotConstructed)
}

func (c RegisterStudentCommand) ActorID() string { return c.actorID }

// BulkUpdateGradeCommand moves every student of one grade to another, as
// done at the start of a school year.
type BulkUpdateGradeCommand struct { //nolint:recvcheck //using for validation
	actorID   string
	fromGrade int
	toGrade   int

	guard guard.ConstructorGuard
}

func NewBulkUpdateGradeCommand(actorID string, fromGrade, toGrade int) (BulkUpdateGradeCommand, error) {
	if actorID == "" {
		return BulkUpdateGradeCommand{}, ErrActorIsRequired
	}
	if err := errors.Join(student.ValidateGrade(fromGrade), student.ValidateGrade(toGrade)); err != nil {
		return BulkUpdateGradeCommand{}, err
	}
	if fromGrade == toGrade {
		return BulkUpdateGradeCommand{}, errs.NewValueIsInvalidErrorWithCause("toGrade",
			fmt.Errorf("%d is the same as fromGrade", toGrade))
	}
	return BulkUpdateGradeCommand{
		actorID:   actorID,
		fromGrade: fromGrade,
		toGrade:   toGrade,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c BulkUpdateGradeCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateGradeCommandIsNotConstructed)
}

func (c BulkUpdateGradeCommand) ActorID() string { return c.actorID }
func (c BulkUpdateGradeCommand) FromGrade() int  { return c.fromGrade }
func (c BulkUpdateGradeCommand) ToGrade() int    { return c.toGrade }

// DeleteStudentCommand removes a roster entry. The student's orders stay.
type DeleteStudentCommand struct { //nolint:recvcheck //using for validation
	actorID   string
	studentID string

	guard guard.ConstructorGuard
}

func NewDeleteStudentCommand(actorID, studentID string) (DeleteStudentCommand, error) {
	if actorID == "" {
		return DeleteStudentCommand{}, ErrActorIsRequired
	}
	if studentID == "" {
		return DeleteStudentCommand{}, errs.NewValueIsRequiredError("studentId")
	}
	return DeleteStudentCommand{actorID: actorID, studentID: studentID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteStudentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStudentCommandIsNotConstructed)
}

func (c DeleteStudentCommand) ActorID() string   { return c.actorID }
func (c DeleteStudentCommand) StudentID() string { return c.studentID }
