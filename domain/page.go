package domain

const DefaultPageSize = 10

// Page is a from/size window. From is snapped down to a multiple of Size, so
// from=5,size=10 returns the first ten rows rather than rows 5..14.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, NewValidationError("from", "must be greater than or equal to zero")
	}
	if size <= 0 {
		return Page{}, NewValidationError("size", "must be greater than zero")
	}
	return Page{From: from, Size: size}, nil
}

func (p Page) Number() int {
	if p.From > 0 {
		return p.From / p.Size
	}
	return 0
}

func (p Page) Limit() int { return p.Size }

func (p Page) Offset() int { return p.Number() * p.Size }
