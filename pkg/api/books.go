package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avasyliev/booktrack/pkg/data"
)

func (c *Client) Books(ctx context.Context) ([]data.Book, error) {
	var books []data.Book
	err := c.get(ctx, "/books/", nil, &books)
	return books, err
}

func (c *Client) Book(ctx context.Context, id int) (data.Book, error) {
	var book data.Book
	err := c.get(ctx, fmt.Sprintf("/books/%d/", id), nil, &book)
	return book, err
}

func (c *Client) AddBook(ctx context.Context, book data.Book) (data.Book, error) {
	if err := c.checkInput(book); err != nil {
		return data.Book{}, err
	}
	var created data.Book
	err := c.post(ctx, "/books/", book, &created)
	return created, err
}

// UpdateBook sends a partial patch; only the keys present are touched.
func (c *Client) UpdateBook(ctx context.Context, id int, updates map[string]any) (data.Book, error) {
	var book data.Book
	err := c.patch(ctx, fmt.Sprintf("/books/%d/", id), updates, &book)
	return book, err
}

func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/books/%d/", id))
}

// SearchFields the external lookup accepts.
var SearchFields = []string{"all", "title", "author", "genre"}

func validSearchField(field string) bool {
	for _, f := range SearchFields {
		if f == field {
			return true
		}
	}
	return false
}

// SearchExternal looks a query up in the external catalog, restricted to one
// field or "all".
func (c *Client) SearchExternal(ctx context.Context, query, field string) ([]data.SearchResult, error) {
	if field == "" {
		field = "all"
	}
	if !validSearchField(field) {
		return nil, validationError(fmt.Errorf("unknown search field %q", field))
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("filter", field)

	var out struct {
		Results []data.SearchResult `json:"results"`
	}
	if err := c.get(ctx, "/search/external/", params, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) Stats(ctx context.Context) (data.Stats, error) {
	var stats data.Stats
	err := c.get(ctx, "/stats/", nil, &stats)
	return stats, err
}

// AddSession records reading time against a book.
func (c *Client) AddSession(ctx context.Context, s data.ReadingSession) (data.ReadingSession, error) {
	if err := c.checkInput(s); err != nil {
		return data.ReadingSession{}, err
	}
	var created data.ReadingSession
	err := c.post(ctx, "/sessions/", s, &created)
	return created, err
}
