package repository

import (
	"context"
	"errors"
	"fmt"

	"board-game-reviews/internal/data/entity"
	"board-game-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Identifiers are taken as the raw path segment and bound as parameters;
// PostgreSQL rejects non-integer text with SQLSTATE 22P02.
type ReviewRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.ReviewWithCount, error)
	Exists(ctx context.Context, id string) (bool, error)
	CountComments(ctx context.Context, id string) (int, error)
	IncrementVotes(ctx context.Context, id string, delta int) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `review_id, title, designer, owner, review_img_url,
	review_body, category, votes, created_at`

func scanReview(row pgx.Row, review *entity.Review, extra ...any) error {
	dest := []any{
		&review.ReviewID,
		&review.Title,
		&review.Designer,
		&review.Owner,
		&review.ReviewImgURL,
		&review.ReviewBody,
		&review.Category,
		&review.Votes,
		&review.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE review_id = $1`

	var review entity.Review
	err := scanReview(r.db.QueryRow(ctx, query, id), &review)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.ReviewWithCount, error) {
	query, args := buildListReviewsQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.String("category", filter.Category),
			zap.String("sort_by", filter.SortBy),
			zap.String("order", filter.Order),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*entity.ReviewWithCount, 0)
	for rows.Next() {
		var review entity.ReviewWithCount
		if err := scanReview(rows, &review.Review, &review.CommentCount); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE review_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return false, fmt.Errorf("check review %s exists: %w", id, err)
	}

	return exists, nil
}

// CountComments does not check that the review exists; a missing review
// counts zero comments.
func (r *reviewRepository) CountComments(ctx context.Context, id string) (int, error) {
	query := `SELECT COUNT(*)::INT FROM comments WHERE review_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		r.log.Error("Failed to count review comments",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return 0, fmt.Errorf("count comments for review %s: %w", id, err)
	}

	return count, nil
}

// IncrementVotes adds delta to the review's votes without clamping and
// returns the updated row, or nil if no review matched.
func (r *reviewRepository) IncrementVotes(ctx context.Context, id string, delta int) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET votes = votes + $2
		WHERE review_id = $1
		RETURNING ` + reviewColumns

	var review entity.Review
	err := scanReview(r.db.QueryRow(ctx, query, id, delta), &review)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update review votes",
			zap.Error(err),
			zap.String("review_id", id),
			zap.Int("inc_votes", delta),
		)
		return nil, fmt.Errorf("update votes for review %s: %w", id, err)
	}

	return &review, nil
}
