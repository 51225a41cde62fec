package product

import (
	"errors"
	"fmt"
	"strings"

	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. Price is in yen. Only available products can
// be ordered; the catalog is listed by DisplayOrder.
type Product struct {
	id           string
	name         string
	price        int
	available    bool
	displayOrder int
	description  string
	imageURL     string

	guard guard.ConstructorGuard
}

type Details struct {
	Description string
	ImageURL    string
}

func NewProduct(id, name string, price int, available bool, displayOrder int, details Details) (*Product, error) {
	var idErr, nameErr, priceErr error
	if id == "" {
		idErr = errs.NewValueIsRequiredError("productId")
	}
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	if err := errors.Join(idErr, nameErr, priceErr); err != nil {
		return nil, err
	}

	return &Product{
		id:           id,
		name:         strings.TrimSpace(name),
		price:        price,
		available:    available,
		displayOrder: displayOrder,
		description:  details.Description,
		imageURL:     details.ImageURL,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Price() int          { return p.price }
func (p *Product) IsAvailable() bool   { return p.available }
func (p *Product) DisplayOrder() int   { return p.displayOrder }
func (p *Product) Description() string { return p.description }
func (p *Product) ImageURL() string    { return p.imageURL }
