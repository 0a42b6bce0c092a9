package data

// Book statuses as the backend stores them.
const (
	StatusReading    = "reading"
	StatusRead       = "read"
	StatusWantToRead = "want-to-read"
	StatusFavorite   = "favorite"
)

type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Genre       string `json:"genre"`
	Year        int    `json:"year,omitempty"`
	TotalPages  int    `json:"totalPages,omitempty"`
	CurrentPage int    `json:"currentPage"`
	Progress    int    `json:"progress"` // percentage, computed by the backend
	Status      string `json:"status"`
	Rating      int    `json:"rating,omitempty"` // 1..5, zero means unrated
	Cover       string `json:"cover,omitempty"`
	Description string `json:"description,omitempty"`
	Note        string `json:"note,omitempty"`
}

type UserProfile struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DisplayName prefers the profile name and falls back to the email.
func (p UserProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

// SearchResult is what the external book search returns. It is transient,
// never stored locally, and only becomes a Book when the user adds it.
type SearchResult struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	Pages       int    `json:"pages"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
}

// ToBook converts a search result into a creatable book payload.
// New books land on the want-to-read shelf.
func (r SearchResult) ToBook() Book {
	return Book{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Year:        r.Year,
		TotalPages:  r.Pages,
		Cover:       r.Cover,
		Description: r.Description,
		Status:      StatusWantToRead,
	}
}

// Note and Quote are standalone entities keyed to a book. A book also
// carries its own denormalized Note field; the two are not the same thing.
type Note struct {
	ID         int    `json:"id"`
	Book       int    `json:"book" validate:"required"`
	Content    string `json:"content" validate:"required"`
	CreatedAt  string `json:"createdAt,omitempty"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}

type Quote struct {
	ID         int    `json:"id"`
	Book       int    `json:"book" validate:"required"`
	Content    string `json:"content" validate:"required"`
	CreatedAt  string `json:"createdAt,omitempty"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}

type ReadingSession struct {
	ID       int    `json:"id,omitempty"`
	Book     int    `json:"book" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"` // minutes
	Note     string `json:"note,omitempty"`
	Date     string `json:"date,omitempty"`
}

// Stats mirrors the aggregate payload of GET /stats/.
type Stats struct {
	YearlyGoal        int     `json:"yearlyGoal"`
	BooksReadThisYear int     `json:"booksReadThisYear"`
	ProgressToGoal    int     `json:"progressToGoal"`
	TotalBooks        int     `json:"totalBooks"`
	ReadCount         int     `json:"readCount"`
	AverageRating     float64 `json:"averageRating"`
	GenresCount       int     `json:"genresCount"`
	TotalPagesRead    int     `json:"totalPagesRead"`
	AveragePagesPer   float64 `json:"averagePagesPerBook"`

	TotalReadingTime       int     `json:"totalReadingTime"` // minutes
	TotalReadingSessions   int     `json:"totalReadingSessions"`
	AverageSessionDuration float64 `json:"averageSessionDuration"`
	AverageTimePerBook     float64 `json:"averageTimePerBook"`

	GenreStats   []GenreCount   `json:"genreStats"`
	MonthlyStats []MonthCount   `json:"monthlyStats"`
	AuthorStats  []AuthorCount  `json:"authorStats"`
	LastActivity []ActivityItem `json:"lastActivity"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

type ActivityItem struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status"`
}
