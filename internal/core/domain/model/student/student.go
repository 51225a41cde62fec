package student

import (
	"errors"
	"strings"

	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"
)

const (
	MinGrade = 1
	MaxGrade = 3

	// PlaceholderName fills name and class of a self-registered student
	// until staff complete the roster entry.
	PlaceholderName = "未設定"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrClassNameIsRequired     = errs.NewValueIsRequiredError("className")
	ErrStudentIsNotConstructed = errors.New("Student must be created via NewStudent constructor")
)

// Student is a roster entry. Its id is the identity provider's user id, so
// the same string authenticates requests and keys orders.
type Student struct {
	id        string
	name      string
	className string
	grade     int
	isActive  bool

	guard guard.ConstructorGuard
}

// NewStudent validates and creates a roster entry.
//
//	s, err := student.NewStudent("user_42", "山田 太郎", "A", 2, true)
func NewStudent(id, name, className string, grade int, isActive bool) (*Student, error) {
	s := &Student{isActive: isActive}

	if id == "" {
		return nil, errs.NewValueIsRequiredError("studentId")
	}
	s.id = id

	if err := s.apply(name, className, grade); err != nil {
		return nil, err
	}

	s.guard = guard.NewConstructorGuard()
	return s, nil
}

// NewPlaceholderStudent is the active grade-1 entry created the first time a
// signed-in user opens the app.
func NewPlaceholderStudent(id string) (*Student, error) {
	return NewStudent(id, PlaceholderName, PlaceholderName, MinGrade, true)
}

func (s *Student) Validate() error {
	if s == nil {
		return ErrStudentIsNotConstructed
	}
	return s.guard.Validate(ErrStudentIsNotConstructed)
}

func (s *Student) ID() string        { return s.id }
func (s *Student) Name() string      { return s.name }
func (s *Student) ClassName() string { return s.className }
func (s *Student) Grade() int        { return s.grade }
func (s *Student) IsActive() bool    { return s.isActive }

// Update replaces every editable field. Nothing changes on error.
func (s *Student) Update(name, className string, grade int, isActive bool) error {
	next := *s
	if err := next.apply(name, className, grade); err != nil {
		return err
	}
	next.isActive = isActive
	*s = next
	return nil
}

// ChangeGrade moves the student to another grade.
func (s *Student) ChangeGrade(grade int) error {
	if err := ValidateGrade(grade); err != nil {
		return err
	}
	s.grade = grade
	return nil
}

// ValidateGrade checks grade against [MinGrade..MaxGrade].
func ValidateGrade(grade int) error {
	if grade < MinGrade || grade > MaxGrade {
		return errs.NewValueIsOutOfRangeError("grade", grade, MinGrade, MaxGrade)
	}
	return nil
}

func (s *Student) apply(name, className string, grade int) error {
	name = strings.TrimSpace(name)
	className = strings.TrimSpace(className)

	var nameErr, classErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if className == "" {
		classErr = ErrClassNameIsRequired
	}
	if err := errors.Join(nameErr, classErr, ValidateGrade(grade)); err != nil {
		return err
	}

	s.name = name
	s.className = className
	s.grade = grade
	return nil
}
