package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/avasyliev/booktrack/pkg/app/styles"
	"github.com/avasyliev/booktrack/pkg/library"
)

var categoryLabels = map[string]string{
	library.CategoryAll:        "All",
	library.CategoryReading:    "Reading",
	library.CategoryRead:       "Read",
	library.CategoryWantToRead: "Want to read",
	library.CategoryFavorite:   "Favorites",
	library.CategoryByGenre:    "By genre",
	library.CategoryByRating:   "By rating",
}

// CategoryTabs is the seven-category selector with count badges.
type CategoryTabs struct {
	ActiveIndex int
	Counts      map[string]int
}

func NewCategoryTabs() *CategoryTabs {
	return &CategoryTabs{Counts: map[string]int{}}
}

func (t *CategoryTabs) Active() string {
	return library.Categories[t.ActiveIndex]
}

func (t *CategoryTabs) Next() {
	t.ActiveIndex = (t.ActiveIndex + 1) % len(library.Categories)
}

func (t *CategoryTabs) Prev() {
	t.ActiveIndex--
	if t.ActiveIndex < 0 {
		t.ActiveIndex = len(library.Categories) - 1
	}
}

func (t *CategoryTabs) SetCounts(counts map[string]int) {
	t.Counts = counts
}

func (t *CategoryTabs) View() string {
	tabs := make([]string, len(library.Categories))
	for i, category := range library.Categories {
		label := fmt.Sprintf("%s %d", categoryLabels[category], t.Counts[category])
		if i == t.ActiveIndex {
			tabs[i] = styles.ActiveTabStyle.Render(label)
		} else {
			tabs[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
