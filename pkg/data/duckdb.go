package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	name  VARCHAR PRIMARY KEY,
	value VARCHAR NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	id           INTEGER PRIMARY KEY,
	title        VARCHAR NOT NULL,
	author       VARCHAR NOT NULL,
	genre        VARCHAR,
	year         INTEGER,
	total_pages  INTEGER,
	current_page INTEGER,
	progress     INTEGER,
	status       VARCHAR,
	rating       INTEGER,
	cover        VARCHAR,
	description  VARCHAR,
	note         VARCHAR
);
`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Repository is the durable client-side storage: the credential slots and a
// per-session cache of the last fetched book collection. The backend owns the
// books; this is only what the client saw last.
type Repository struct {
	db *sql.DB
}

func Open(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) PutSlot(name, value string) error {
	_, err := r.db.Exec(`INSERT OR REPLACE INTO slots (name, value) VALUES (?, ?)`, name, value)
	return err
}

// GetSlot returns the slot value and whether the slot exists.
func (r *Repository) GetSlot(name string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *Repository) DeleteSlot(name string) error {
	_, err := r.db.Exec(`DELETE FROM slots WHERE name = ?`, name)
	return err
}

// ReplaceBooks swaps the cached collection for a freshly fetched one.
func (r *Repository) ReplaceBooks(books []Book) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM books`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO books
		(id, title, author, genre, year, total_pages, current_page, progress, status, rating, cover, description, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, b := range books {
		_, err := stmt.Exec(b.ID, b.Title, b.Author, b.Genre, b.Year, b.TotalPages,
			b.CurrentPage, b.Progress, b.Status, b.Rating, b.Cover, b.Description, b.Note)
		if err != nil {
			return fmt.Errorf("failed to cache book %d: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

func (r *Repository) ListBooks() ([]Book, error) {
	rows, err := r.db.Query(`SELECT id, title, author, genre, year, total_pages,
		current_page, progress, status, rating, cover, description, note
		FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Year, &b.TotalPages,
			&b.CurrentPage, &b.Progress, &b.Status, &b.Rating, &b.Cover, &b.Description, &b.Note)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// UpdateBookNote patches the cached copy of a single book.
func (r *Repository) UpdateBookNote(id int, note string) error {
	_, err := r.db.Exec(`UPDATE books SET note = ? WHERE id = ?`, note, id)
	return err
}

// ClearBooks drops the cached collection, used on logout.
func (r *Repository) ClearBooks() error {
	_, err := r.db.Exec(`DELETE FROM books`)
	return err
}
