package api

import (
	"context"
	"fmt"

	"github.com/avasyliev/booktrack/pkg/data"
)

func (c *Client) Notes(ctx context.Context) ([]data.Note, error) {
	var notes []data.Note
	err := c.get(ctx, "/notes/", nil, &notes)
	return notes, err
}

func (c *Client) AddNote(ctx context.Context, note data.Note) (data.Note, error) {
	if err := c.checkInput(note); err != nil {
		return data.Note{}, err
	}
	var created data.Note
	err := c.post(ctx, "/notes/", note, &created)
	return created, err
}

func (c *Client) UpdateNote(ctx context.Context, id int, updates map[string]any) (data.Note, error) {
	var note data.Note
	err := c.patch(ctx, fmt.Sprintf("/notes/%d/", id), updates, &note)
	return note, err
}

func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/notes/%d/", id))
}

func (c *Client) Quotes(ctx context.Context) ([]data.Quote, error) {
	var quotes []data.Quote
	err := c.get(ctx, "/quotes/", nil, &quotes)
	return quotes, err
}

func (c *Client) AddQuote(ctx context.Context, quote data.Quote) (data.Quote, error) {
	if err := c.checkInput(quote); err != nil {
		return data.Quote{}, err
	}
	var created data.Quote
	err := c.post(ctx, "/quotes/", quote, &created)
	return created, err
}

func (c *Client) UpdateQuote(ctx context.Context, id int, updates map[string]any) (data.Quote, error) {
	var quote data.Quote
	err := c.patch(ctx, fmt.Sprintf("/quotes/%d/", id), updates, &quote)
	return quote, err
}

func (c *Client) DeleteQuote(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/quotes/%d/", id))
}
