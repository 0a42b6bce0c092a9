package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/data"
)

// BookList is a vertically scrolled card list with wrap-around selection.
type BookList struct {
	Items         []data.Book
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewBookList() *BookList {
	return &BookList{
		Items:         []data.Book{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No books here yet",
	}
}

func (l *BookList) SetItems(items []data.Book) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = 0
	}
}

func (l *BookList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *BookList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *BookList) Selected() *data.Book {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

// Stars renders a 5-star rating, empty string for unrated.
func Stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func (l *BookList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	for i, book := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(book.Title)
		author := styles.SubtitleStyle.Render(book.Author)

		var info []string
		if book.Genre != "" {
			info = append(info, book.Genre)
		}
		if book.Year != 0 {
			info = append(info, fmt.Sprintf("%d", book.Year))
		}
		if book.TotalPages != 0 {
			info = append(info, fmt.Sprintf("%d pages", book.TotalPages))
		}
		metaLine := styles.MutedStyle.Render(strings.Join(info, " · "))

		status := styles.StatusStyle(book.Status).Render(book.Status)
		if book.Status == data.StatusReading && book.TotalPages > 0 {
			bar := ProgressBar(book.CurrentPage, book.TotalPages, 24)
			status = fmt.Sprintf("%s %s %d%%", status, bar, book.Progress)
		}

		lines := []string{title, author, metaLine, status}
		if stars := Stars(book.Rating); stars != "" {
			lines = append(lines, styles.RatingStyle.Render(stars))
		}
		if book.Note != "" {
			note := book.Note
			if len(note) > 70 {
				note = note[:67] + "..."
			}
			lines = append(lines, styles.MutedStyle.Render("✎ "+note))
		}

		cardContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
