package repository

import (
	"context"
	"fmt"

	"board-game-reviews/internal/data/entity"
	"board-game-reviews/pkg/database"

	"go.uber.org/zap"
)

type CommentRepository interface {
	FindByReviewID(ctx context.Context, reviewID string) ([]*entity.Comment, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, reviewID, author, body string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

// FindByReviewID lists a review's comments, newest first.
func (r *commentRepository) FindByReviewID(ctx context.Context, reviewID string) ([]*entity.Comment, error) {
	query := `
		SELECT comment_id, review_id, author, body, votes, created_at
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`

	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		r.log.Error("Failed to find comments by review ID",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("find comments by review ID %s: %w", reviewID, err)
	}
	defer rows.Close()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.CommentID,
			&comment.ReviewID,
			&comment.Author,
			&comment.Body,
			&comment.Votes,
			&comment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows for review %s: %w", reviewID, err)
	}

	return comments, nil
}

func (r *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check comment existence",
			zap.Error(err),
			zap.String("comment_id", id),
		)
		return false, fmt.Errorf("check comment %s exists: %w", id, err)
	}

	return exists, nil
}

func (r *commentRepository) Create(ctx context.Context, reviewID, author, body string) (*entity.Comment, error) {
	query := `
		INSERT INTO comments (review_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, review_id, author, body, votes, created_at
	`

	var comment entity.Comment
	err := r.db.QueryRow(ctx, query, reviewID, author, body).Scan(
		&comment.CommentID,
		&comment.ReviewID,
		&comment.Author,
		&comment.Body,
		&comment.Votes,
		&comment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", reviewID),
			zap.String("author", author),
		)
		return nil, fmt.Errorf("create comment on review %s by %s: %w", reviewID, author, err)
	}

	r.log.Info("Comment created",
		zap.Int("comment_id", comment.CommentID),
		zap.String("review_id", reviewID),
	)
	return &comment, nil
}

// Delete reports whether a row was removed.
func (r *commentRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", id),
		)
		return false, fmt.Errorf("delete comment %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Comment deleted", zap.String("comment_id", id))
	return true, nil
}
