package model

import "strconv"

// Page is one slice of a paginated post listing.
type Page struct {
	Number   int     `json:"number"`
	NumPages int     `json:"num_pages"`
	Count    int     `json:"count"`
	PerPage  int     `json:"per_page"`
	Posts    []*Post `json:"posts"`
}

// ResolvePage turns an untrusted page parameter into a valid page number.
// Anything that is not a base-10 integer means the first page; an integer
// outside [1, NumPages] means the last page. An empty listing still has one page.
func ResolvePage(raw string, count, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	numPages := (count + perPage - 1) / perPage
	if numPages < 1 {
		numPages = 1
	}

	number := 1
	if raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			number = 1
		case n < 1 || n > numPages:
			number = numPages
		default:
			number = n
		}
	}

	return Page{
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PerPage:  perPage,
	}
}

func (p *Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page) NextNumber() int {
	return p.Number + 1
}

func (p *Page) PreviousNumber() int {
	return p.Number - 1
}
