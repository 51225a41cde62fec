package order

import (
	"fmt"

	"schoollunch/internal/pkg/errs"
)

// Line is one product of an order. UnitPrice is the product price at the
// moment the order was placed and is never re-derived.
type Line struct {
	productID string
	quantity  int
	unitPrice int
}

func NewLine(productID string, quantity, unitPrice int) (Line, error) {
	if productID == "" {
		return Line{}, errs.NewValueIsRequiredError("productId")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", unitPrice))
	}
	return Line{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l Line) ProductID() string { return l.productID }
func (l Line) Quantity() int     { return l.quantity }
func (l Line) UnitPrice() int    { return l.unitPrice }

// Amount is UnitPrice times Quantity.
func (l Line) Amount() int {
	return l.unitPrice * l.quantity
}
