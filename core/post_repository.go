package core

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPostNotFound is returned when no row matches the requested post id.
var ErrPostNotFound = errors.New("post not found")

// Post is a blog post with tags decoded from their stored JSON form.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, title, content, author string, tags []string) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, title, content, author string, tags []string) (*Post, error)
	Delete(ctx context.Context, id int64) error
	ListByTag(ctx context.Context, tag string) ([]Post, error)
}

// PgPostRepository implements PostRepository using pgxpool. Tags are
// serialized as a JSON array into the TEXT tags column at this boundary.
type PgPostRepository struct {
	db *pgxpool.Pool
}

func NewPgPostRepository(db *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{db: db}
}

func (r *PgPostRepository) Create(ctx context.Context, title, content, author string, tags []string) (*Post, error) {
	raw, err := encodeTags(tags)
	if err != nil {
		return nil, err
	}
	const q = `INSERT INTO posts (title, content, author, tags) VALUES ($1,$2,$3,$4) RETURNING id, created_at, updated_at`
	p := Post{Title: title, Content: content, Author: author, Tags: normalizeTags(tags)}
	if err := r.db.QueryRow(ctx, q, title, content, author, raw).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgPostRepository) List(ctx context.Context) ([]Post, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, content, author, tags, created_at, updated_at FROM posts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PgPostRepository) Get(ctx context.Context, id int64) (*Post, error) {
	const q = `SELECT id, title, content, author, tags, created_at, updated_at FROM posts WHERE id=$1`
	var p Post
	var raw string
	if err := r.db.QueryRow(ctx, q, id).Scan(&p.ID, &p.Title, &p.Content, &p.Author, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	tags, err := decodeTags(raw)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return &p, nil
}

func (r *PgPostRepository) Update(ctx context.Context, id int64, title, content, author string, tags []string) (*Post, error) {
	raw, err := encodeTags(tags)
	if err != nil {
		return nil, err
	}
	const q = `UPDATE posts SET title=$1, content=$2, author=$3, tags=$4, updated_at=now() WHERE id=$5 RETURNING created_at, updated_at`
	p := Post{ID: id, Title: title, Content: content, Author: author, Tags: normalizeTags(tags)}
	if err := r.db.QueryRow(ctx, q, title, content, author, raw, id).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PgPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

// ListByTag returns posts whose tags array contains tag, mirroring the
// containment semantics of a JSON_CONTAINS lookup.
func (r *PgPostRepository) ListByTag(ctx context.Context, tag string) ([]Post, error) {
	needle, err := encodeTags([]string{tag})
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, title, content, author, tags, created_at, updated_at FROM posts WHERE tags::jsonb @> $1 ORDER BY id`, needle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]Post, error) {
	items := make([]Post, 0)
	for rows.Next() {
		var p Post
		var raw string
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		tags, err := decodeTags(raw)
		if err != nil {
			return nil, err
		}
		p.Tags = tags
		items = append(items, p)
	}
	return items, rows.Err()
}

// encodeTags serializes tags for the TEXT column; nil encodes as [].
func encodeTags(tags []string) (string, error) {
	b, err := json.Marshal(normalizeTags(tags))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTags parses the stored JSON array; an empty column yields an empty slice.
func decodeTags(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
