package parser

import "errors"

var (
	ErrUnparsablePrice = errors.New("unparsable price")
	ErrElementNotFound = errors.New("element not found")
)

// Fields holds the independently extracted product fields. A nil
// pointer means that field could not be read; one field failing never
// blocks the others.
type Fields struct {
	Title  *string
	Seller *string
	Price  *float64
}

func (f Fields) Complete() bool {
	return f.Title != nil && f.Seller != nil && f.Price != nil
}
