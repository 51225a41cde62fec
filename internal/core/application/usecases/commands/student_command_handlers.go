package commands

import (
	"context"
	"errors"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/pkg/errs"
)

// StudentCommandHandler runs every roster command. Each Handle method opens
// its own Unit of Work.
type StudentCommandHandler struct {
	uowFactory StudentUoWFactory
	authorizer Authorizer
	logger     *slog.Logger
}

// NewStudentCommandHandler creates the roster command handler.
func NewStudentCommandHandler(uowFactory StudentUoWFactory, authorizer Authorizer, logger *slog.Logger) StudentCommandHandler {
	return StudentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		logger:     logger.With("component", "student_command_handler"),
	}
}

// HandleCreate adds a roster entry. A taken id is errs.ErrValueIsInvalid.
func (h StudentCommandHandler) HandleCreate(ctx context.Context, cmd SaveStudentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageStudents); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	p := cmd.Profile()
	s, err := student.NewStudent(cmd.StudentID(), p.Name, p.ClassName, p.Grade, p.IsActive)
	if err != nil {
		return err
	}

	return failed(ctx, h.logger, "create student", h.inTx(ctx, func(uow StudentUoW) error {
		return uow.StudentRepository().Add(ctx, s)
	}))
}

// HandleUpdate replaces the editable fields of an existing entry.
func (h StudentCommandHandler) HandleUpdate(ctx context.Context, cmd SaveStudentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageStudents); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "update student", h.inTx(ctx, func(uow StudentUoW) error {
		repo := uow.StudentRepository()

		s, err := repo.Get(ctx, cmd.StudentID())
		if err != nil {
			return err
		}

		p := cmd.Profile()
		if err = s.Update(p.Name, p.ClassName, p.Grade, p.IsActive); err != nil {
			return err
		}

		return repo.Update(ctx, s)
	}))
}

// HandleRegister creates the caller's placeholder entry. Calling it again
// once the entry exists is a no-op.
func (h StudentCommandHandler) HandleRegister(ctx context.Context, cmd RegisterStudentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ViewOwnData); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "register student", h.inTx(ctx, func(uow StudentUoW) error {
		repo := uow.StudentRepository()

		_, err := repo.Get(ctx, cmd.ActorID())
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		s, err := student.NewPlaceholderStudent(cmd.ActorID())
		if err != nil {
			return err
		}
		return repo.Add(ctx, s)
	}))
}

// HandleBulkUpdateGrade returns how many students were moved.
func (h StudentCommandHandler) HandleBulkUpdateGrade(ctx context.Context, cmd BulkUpdateGradeCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageStudents); err != nil {
		return 0, failed(ctx, h.logger, "authorize", err)
	}

	var moved int64
	err := h.inTx(ctx, func(uow StudentUoW) error {
		var moveErr error
		moved, moveErr = uow.StudentRepository().MoveGrade(ctx, cmd.FromGrade(), cmd.ToGrade())
		return moveErr
	})
	if err != nil {
		return 0, failed(ctx, h.logger, "bulk update grade", err)
	}

	h.logger.InfoContext(ctx, "grade moved", "from", cmd.FromGrade(), "to", cmd.ToGrade(), "count", moved)
	return moved, nil
}

// HandleDelete removes a roster entry. An unknown id is errs.ErrObjectNotFound.
func (h StudentCommandHandler) HandleDelete(ctx context.Context, cmd DeleteStudentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageStudents); err != nil {
		return failed(ctx, h.logger, "authorize", err)
	}

	return failed(ctx, h.logger, "delete student", h.inTx(ctx, func(uow StudentUoW) error {
		return uow.StudentRepository().Delete(ctx, cmd.StudentID())
	}))
}

func (h StudentCommandHandler) inTx(ctx context.Context, fn func(uow StudentUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
