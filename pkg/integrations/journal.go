package integrations

import (
	"fmt"
	"html"
	"os"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/logger"
)

// JournalBuilder compiles the library plus its notes and quotes into a
// single EPUB reading journal, one section per book.
type JournalBuilder struct {
	outputDir string
	covers    *CoverFetcher
}

func NewJournalBuilder(outputDir string) *JournalBuilder {
	return &JournalBuilder{
		outputDir: outputDir,
		covers:    NewCoverFetcher(),
	}
}

// CreateJournal writes the journal and returns the output path.
func (b *JournalBuilder) CreateJournal(profile data.UserProfile, books []data.Book, notes []data.Note, quotes []data.Quote) (string, error) {
	if len(books) == 0 {
		return "", fmt.Errorf("no books to compile")
	}
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	notesByBook := make(map[int][]data.Note)
	for _, n := range notes {
		notesByBook[n.Book] = append(notesByBook[n.Book], n)
	}
	quotesByBook := make(map[int][]data.Quote)
	for _, q := range quotes {
		quotesByBook[q.Book] = append(quotesByBook[q.Book], q)
	}

	sorted := make([]data.Book, len(books))
	copy(sorted, books)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})

	e, err := epub.NewEpub("Reading Journal")
	if err != nil {
		return "", fmt.Errorf("failed to create EPUB: %w", err)
	}
	e.SetAuthor(profile.DisplayName())
	e.SetDescription(fmt.Sprintf("Reading journal of %s: %d books.", profile.DisplayName(), len(books)))
	e.SetLang("en")

	for _, book := range sorted {
		if err := b.addBookSection(e, book, notesByBook[book.ID], quotesByBook[book.ID]); err != nil {
			return "", fmt.Errorf("failed to add %q: %w", book.Title, err)
		}
	}

	outputPath := fmt.Sprintf("%s/reading-journal.epub", strings.TrimRight(b.outputDir, "/"))
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPUB: %w", err)
	}
	return outputPath, nil
}

func (b *JournalBuilder) addBookSection(e *epub.Epub, book data.Book, notes []data.Note, quotes []data.Quote) error {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(book.Title)))
	content.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(book.Author)))

	if book.Cover != "" {
		local, err := b.covers.Fetch(book.Cover)
		if err != nil {
			// A journal without a cover is still a journal.
			logger.Log.WithError(err).Debugf("skipping cover for %q", book.Title)
		} else {
			internal, err := e.AddImage(local, "")
			if err == nil {
				content.WriteString(fmt.Sprintf(`<div class="cover"><img src="%s" alt="Cover"/></div>%s`, internal, "\n"))
			}
		}
	}

	var meta []string
	if book.Genre != "" {
		meta = append(meta, html.EscapeString(book.Genre))
	}
	if book.Year != 0 {
		meta = append(meta, fmt.Sprintf("%d", book.Year))
	}
	if book.TotalPages != 0 {
		meta = append(meta, fmt.Sprintf("%d pages", book.TotalPages))
	}
	meta = append(meta, html.EscapeString(book.Status))
	content.WriteString(fmt.Sprintf("<p><em>%s</em></p>\n", strings.Join(meta, " · ")))

	if book.Rating > 0 {
		stars := strings.Repeat("★", book.Rating) + strings.Repeat("☆", 5-book.Rating)
		content.WriteString(fmt.Sprintf("<p>%s</p>\n", stars))
	}
	if book.Description != "" {
		content.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(book.Description)))
	}
	if book.Note != "" {
		content.WriteString("<h3>Note</h3>\n")
		content.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(book.Note)))
	}
	if len(notes) > 0 {
		content.WriteString("<h3>Notes</h3>\n<ul>\n")
		for _, n := range notes {
			content.WriteString(fmt.Sprintf("<li>%s</li>\n", html.EscapeString(n.Content)))
		}
		content.WriteString("</ul>\n")
	}
	if len(quotes) > 0 {
		content.WriteString("<h3>Quotes</h3>\n")
		for _, q := range quotes {
			content.WriteString(fmt.Sprintf("<blockquote>%s</blockquote>\n", html.EscapeString(q.Content)))
		}
	}

	_, err := e.AddSection(content.String(), book.Title, "", "")
	return err
}
