// Package favorite records the products a student bookmarked in the catalog.
package favorite

import (
	"errors"

	"schoollunch/internal/pkg/errs"
)

// Favorite is unique per (StudentID, ProductID).
type Favorite struct {
	studentID string
	productID string
}

func NewFavorite(studentID, productID string) (Favorite, error) {
	var studentErr, productErr error
	if studentID == "" {
		studentErr = errs.NewValueIsRequiredError("studentId")
	}
	if productID == "" {
		productErr = errs.NewValueIsRequiredError("productId")
	}
	if err := errors.Join(studentErr, productErr); err != nil {
		return Favorite{}, err
	}
	return Favorite{studentID: studentID, productID: productID}, nil
}

func (f Favorite) StudentID() string { return f.studentID }
func (f Favorite) ProductID() string { return f.productID }
