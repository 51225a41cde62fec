package access

import (
	"context"
	"errors"

	"schoollunch/internal/core/domain/model/admin"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/pkg/errs"
)

// Capability is an action guarded by Authorize.
type Capability int

const (
	PlaceOrder Capability = iota + 1
	CancelOrder
	ReceiveOrder
	ManageFavorites
	ViewOwnData
	ManageOrders
	ViewReports
	ManageStudents
)

func (c Capability) String() string {
	switch c {
	case PlaceOrder:
		return "place orders"
	case CancelOrder:
		return "cancel orders"
	case ReceiveOrder:
		return "receive orders"
	case ManageFavorites:
		return "manage favorites"
	case ViewOwnData:
		return "view own data"
	case ManageOrders:
		return "manage orders"
	case ViewReports:
		return "view reports"
	case ManageStudents:
		return "manage students"
	default:
		return "unknown capability"
	}
}

func (c Capability) staff() bool {
	switch c {
	case ManageOrders, ViewReports, ManageStudents, ReceiveOrder:
		return true
	default:
		return false
	}
}

// Actor is the resolved caller. Admin and Student are nil when the user has
// no such account.
type Actor struct {
	ID      string
	Admin   *admin.Admin
	Student *student.Student
}

func (a Actor) IsAdmin() bool {
	return a.Admin != nil
}

// Authorizer is the single capability check in front of every command and
// staff query.
//
//   - staff accounts hold ManageOrders, ViewReports, ManageStudents and ReceiveOrder
//   - students hold PlaceOrder (only while active), CancelOrder, ReceiveOrder and ManageFavorites
//   - any signed-in user holds ViewOwnData, which covers first-time registration
type Authorizer struct {
	directory ports.Directory
}

func NewAuthorizer(directory ports.Directory) Authorizer {
	return Authorizer{directory: directory}
}

// Authorize resolves actorID and checks it holds c. A refusal is an
// *errs.ForbiddenError; lookup failures are returned as is.
func (a Authorizer) Authorize(ctx context.Context, actorID string, c Capability) (Actor, error) {
	if actorID == "" {
		return Actor{}, errs.NewForbiddenError("anonymous", c.String())
	}

	actor, err := a.resolve(ctx, actorID)
	if err != nil {
		return Actor{}, err
	}

	if c == ViewOwnData {
		return actor, nil
	}
	if actor.IsAdmin() && c.staff() {
		return actor, nil
	}

	if actor.Student != nil {
		switch c {
		case CancelOrder, ReceiveOrder, ManageFavorites:
			return actor, nil
		case PlaceOrder:
			if actor.Student.IsActive() {
				return actor, nil
			}
		default:
		}
	}

	return Actor{}, errs.NewForbiddenError(actorID, c.String())
}

func (a Authorizer) resolve(ctx context.Context, actorID string) (Actor, error) {
	actor := Actor{ID: actorID}

	adm, err := a.directory.FindAdmin(ctx, actorID)
	switch {
	case err == nil:
		actor.Admin = adm
	case !errors.Is(err, errs.ErrObjectNotFound):
		return Actor{}, err
	}

	st, err := a.directory.FindStudent(ctx, actorID)
	switch {
	case err == nil:
		actor.Student = st
	case !errors.Is(err, errs.ErrObjectNotFound):
		return Actor{}, err
	}

	return actor, nil
}
