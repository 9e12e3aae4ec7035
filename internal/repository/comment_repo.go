package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"moodfeed/internal/domain"
)

// CommentRepository es la fuente de comentarios recientes escritos por un visor. Solo lectura.
type CommentRepository interface {
	ListRecentComments(ctx context.Context, author string, limit int) ([]domain.Comment, error)
}

type PgCommentRepository struct {
	pool pgQuerier
}

func NewPgCommentRepository(pool *pgxpool.Pool) *PgCommentRepository {
	return &PgCommentRepository{pool: pool}
}

func (r *PgCommentRepository) ListRecentComments(ctx context.Context, author string, limit int) ([]domain.Comment, error) {
	const query = `
		SELECT id, username, COALESCE(avatar, ''), text, sentiment, created_at
		FROM comments
		WHERE username = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, query, author, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var (
			c         domain.Comment
			sentiment *string
		)
		err = rows.Scan(
			&c.ID,
			&c.Username,
			&c.Avatar,
			&c.Text,
			&sentiment,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if sentiment != nil {
			// Una etiqueta invalida en la base se descarta y el comentario se reclasifica.
			if s, err := domain.ParseSentiment(*sentiment); err == nil {
				c.Sentiment = s
			}
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
