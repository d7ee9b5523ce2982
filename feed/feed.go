// Package feed slices an ordered post listing into fixed-size pages.
package feed

import (
	"context"
	"strconv"

	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
)

// Page is one feed page plus the metadata the pagination controls render.
type Page struct {
	Posts      []*model.Post
	Number     int
	TotalPages int
}

func (p *Page) HasPrev() bool {
	return p.Number > 1
}

func (p *Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p *Page) PrevNumber() int {
	return p.Number - 1
}

func (p *Page) NextNumber() int {
	return p.Number + 1
}

// Paginate resolves a raw ?page= value against the filtered listing.
// Malformed or sub-1 values fall back to page 1; values beyond the last page
// clamp to the last page. An empty listing still yields one (empty) page.
func Paginate(ctx context.Context, posts db.PostDatabase, filter *db.PostsFilter, rawPage string, perPage int) (*Page, error) {
	total, err := posts.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil || number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	items, err := posts.Posts(ctx, filter, perPage, (number-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &Page{
		Posts:      items,
		Number:     number,
		TotalPages: totalPages,
	}, nil
}
