package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"moodfeed/internal/domain"
)

// PostRepository es la fuente de publicaciones del feed. Solo lectura.
type PostRepository interface {
	ListPosts(ctx context.Context, limit int) ([]domain.Post, error)
}

type PgPostRepository struct {
	pool pgQuerier
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) ListPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	const query = `
		SELECT id, username, COALESCE(avatar, ''), COALESCE(image, ''), caption, likes, comments, created_at, moods
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var (
			post  domain.Post
			moods []string
		)
		err = rows.Scan(
			&post.ID,
			&post.Username,
			&post.Avatar,
			&post.Image,
			&post.Caption,
			&post.LikeCount,
			&post.CommentCount,
			&post.CreatedAt,
			&moods,
		)
		if err != nil {
			return nil, err
		}
		if post.Moods, err = parsePostMoods(post.ID, moods); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// parsePostMoods valida la columna moods: todo post lleva al menos un mood de la taxonomia.
func parsePostMoods(id string, raw []string) ([]domain.Mood, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrPostWithoutMoods)
	}
	moods := make([]domain.Mood, 0, len(raw))
	for _, r := range raw {
		m, err := domain.ParseMood(r)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", id, err)
		}
		moods = append(moods, m)
	}
	return moods, nil
}
