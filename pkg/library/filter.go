// Package library derives the shelf views from an in-memory book
// collection. Everything here is pure: no network, no storage, inputs are
// never mutated.
package library

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/avasyliev/booktrack/pkg/data"
)

// The seven closed categories of the library view, in display order.
const (
	CategoryAll        = "all"
	CategoryReading    = "reading"
	CategoryRead       = "read"
	CategoryWantToRead = "want-to-read"
	CategoryFavorite   = "favorite"
	CategoryByGenre    = "by-genre"
	CategoryByRating   = "by-rating"
)

var Categories = []string{
	CategoryAll,
	CategoryReading,
	CategoryRead,
	CategoryWantToRead,
	CategoryFavorite,
	CategoryByGenre,
	CategoryByRating,
}

// genreCollator gives locale-aware genre ordering. The collator is not safe
// for concurrent use, so each call builds its own.
func genreCollator() *collate.Collator {
	return collate.New(language.Und)
}

// FilterByCategory returns the view for one category. Status categories are
// equality filters. by-rating keeps only rated books, best first; by-genre
// keeps everything, ordered by genre. Both sorts are stable, so ties keep
// their original relative order.
func FilterByCategory(books []data.Book, category string) []data.Book {
	switch category {
	case CategoryReading, CategoryRead, CategoryWantToRead, CategoryFavorite:
		var filtered []data.Book
		for _, b := range books {
			if b.Status == category {
				filtered = append(filtered, b)
			}
		}
		return filtered
	case CategoryByRating:
		var rated []data.Book
		for _, b := range books {
			if b.Rating > 0 {
				rated = append(rated, b)
			}
		}
		sort.SliceStable(rated, func(i, j int) bool {
			return rated[i].Rating > rated[j].Rating
		})
		return rated
	case CategoryByGenre:
		sorted := append([]data.Book(nil), books...)
		c := genreCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Genre, sorted[j].Genre) < 0
		})
		return sorted
	default: // CategoryAll
		return append([]data.Book(nil), books...)
	}
}

// CountsByCategory returns the badge count for every category. all and
// by-genre both report the full collection; by-rating counts rated books.
func CountsByCategory(books []data.Book) map[string]int {
	counts := map[string]int{
		CategoryAll:        len(books),
		CategoryReading:    0,
		CategoryRead:       0,
		CategoryWantToRead: 0,
		CategoryFavorite:   0,
		CategoryByGenre:    len(books),
		CategoryByRating:   0,
	}
	for _, b := range books {
		switch b.Status {
		case data.StatusReading, data.StatusRead, data.StatusWantToRead, data.StatusFavorite:
			counts[b.Status]++
		}
		if b.Rating > 0 {
			counts[CategoryByRating]++
		}
	}
	return counts
}

// GenreGroup is one genre shelf: the genre name and its books in their
// original collection order.
type GenreGroup struct {
	Genre string
	Books []data.Book
}

// GroupByGenre buckets books by genre, genres ordered ascending. Books with
// an empty genre are left out entirely.
func GroupByGenre(books []data.Book) []GenreGroup {
	byGenre := make(map[string][]data.Book)
	var genres []string
	for _, b := range books {
		if b.Genre == "" {
			continue
		}
		if _, seen := byGenre[b.Genre]; !seen {
			genres = append(genres, b.Genre)
		}
		byGenre[b.Genre] = append(byGenre[b.Genre], b)
	}

	c := genreCollator()
	sort.SliceStable(genres, func(i, j int) bool {
		return c.CompareString(genres[i], genres[j]) < 0
	})

	groups := make([]GenreGroup, len(genres))
	for i, g := range genres {
		groups[i] = GenreGroup{Genre: g, Books: byGenre[g]}
	}
	return groups
}

// ApplyNoteUpdate returns a copy of the collection with one book's note
// replaced. The caller owns committing the same change remotely and putting
// the old collection back if that commit fails.
func ApplyNoteUpdate(books []data.Book, bookID int, note string) []data.Book {
	updated := append([]data.Book(nil), books...)
	for i := range updated {
		if updated[i].ID == bookID {
			updated[i].Note = note
		}
	}
	return updated
}
