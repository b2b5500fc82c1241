package wire

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"board-game-reviews/internal/data/entity"
	"board-game-reviews/internal/data/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore keeps the seed data in memory and rejects non-integer ids the
// way PostgreSQL does, with SQLSTATE 22P02.
type fakeStore struct {
	mu            sync.Mutex
	categories    []*entity.Category
	users         []*entity.User
	reviews       map[int]*entity.Review
	comments      map[int]*entity.Comment
	nextCommentID int
	lastFilter    repository.ReviewFilter
	failWith      error
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, &pgconn.PgError{
			Code:    "22P02",
			Message: `invalid input syntax for type integer: "` + s + `"`,
		}
	}
	return id, nil
}

func strPtr(s string) *string { return &s }

func newFakeStore() *fakeStore {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.DateTime, s)
		return t
	}

	s := &fakeStore{
		categories: []*entity.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		users: []*entity.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: strPtr("https://example.com/haz.jpg")},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: strPtr("https://example.com/p.jpg")},
			{Username: "bainesface", Name: "sarah", AvatarURL: strPtr("https://example.com/s.jpg")},
			{Username: "dav3rid", Name: "dave", AvatarURL: strPtr("https://example.com/d.jpg")},
		},
		reviews: map[int]*entity.Review{
			1: {ReviewID: 1, Title: "Agricola", Designer: strPtr("Uwe Rosenberg"), Owner: "mallionaire",
				ReviewImgURL: strPtr("https://example.com/agricola.jpg"), ReviewBody: "Farmyard fun!",
				Category: "euro game", Votes: 1, CreatedAt: at("2021-01-18 10:00:20")},
			2: {ReviewID: 2, Title: "Jenga", Designer: strPtr("Leslie Scott"), Owner: "philippaclaire9",
				ReviewImgURL: strPtr("https://example.com/jenga.jpg"), ReviewBody: "Fiddly fun for all the family",
				Category: "dexterity", Votes: 5, CreatedAt: at("2021-01-18 10:01:41")},
			3: {ReviewID: 3, Title: "Ultimate Werewolf", Designer: strPtr("Akihisa Okui"), Owner: "bainesface",
				ReviewImgURL: strPtr("https://example.com/werewolf.jpg"), ReviewBody: "We couldn't find the werewolf!",
				Category: "social deduction", Votes: 5, CreatedAt: at("2021-01-18 10:01:41")},
		},
		comments: map[int]*entity.Comment{
			1: {CommentID: 1, ReviewID: 2, Author: "bainesface", Body: "I loved this game too!", Votes: 16, CreatedAt: at("2017-11-22 12:43:33")},
			2: {CommentID: 2, ReviewID: 3, Author: "mallionaire", Body: "My dog loved this game too!", Votes: 13, CreatedAt: at("2021-01-18 10:09:05")},
			3: {CommentID: 3, ReviewID: 3, Author: "philippaclaire9", Body: "I didn't know dogs could play games", Votes: 10, CreatedAt: at("2021-01-18 10:09:48")},
			4: {CommentID: 4, ReviewID: 2, Author: "bainesface", Body: "EPIC board game!", Votes: 16, CreatedAt: at("2017-11-22 12:36:03")},
			5: {CommentID: 5, ReviewID: 2, Author: "mallionaire", Body: "Now this is a story", Votes: 13, CreatedAt: at("2021-01-18 10:24:05")},
		},
		nextCommentID: 6,
	}
	return s
}

func (s *fakeStore) repository() *repository.Repository {
	return &repository.Repository{
		Category: fakeCategories{s},
		Review:   fakeReviews{s},
		Comment:  fakeComments{s},
		User:     fakeUsers{s},
	}
}

func (s *fakeStore) countComments(reviewID int) int {
	n := 0
	for _, c := range s.comments {
		if c.ReviewID == reviewID {
			n++
		}
	}
	return n
}

type fakeCategories struct{ s *fakeStore }

func (f fakeCategories) FindAll(context.Context) ([]*entity.Category, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	return f.s.categories, nil
}

type fakeUsers struct{ s *fakeStore }

func (f fakeUsers) FindAll(context.Context) ([]*entity.User, error) {
	return f.s.users, nil
}

func (f fakeUsers) Exists(_ context.Context, username string) (bool, error) {
	for _, u := range f.s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeReviews struct{ s *fakeStore }

func (f fakeReviews) FindByID(_ context.Context, id string) (*entity.Review, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	review, ok := f.s.reviews[n]
	if !ok {
		return nil, nil
	}
	cp := *review
	return &cp, nil
}

func (f fakeReviews) FindAll(_ context.Context, filter repository.ReviewFilter) ([]*entity.ReviewWithCount, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.lastFilter = filter

	out := make([]*entity.ReviewWithCount, 0)
	for _, r := range f.s.reviews {
		if filter.Category != "" && r.Category != filter.Category {
			continue
		}
		out = append(out, &entity.ReviewWithCount{Review: *r, CommentCount: f.s.countComments(r.ReviewID)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReviewID < out[j].ReviewID })
	return out, nil
}

func (f fakeReviews) Exists(_ context.Context, id string) (bool, error) {
	n, err := parseID(id)
	if err != nil {
		return false, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	_, ok := f.s.reviews[n]
	return ok, nil
}

func (f fakeReviews) CountComments(_ context.Context, id string) (int, error) {
	n, err := parseID(id)
	if err != nil {
		return 0, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	return f.s.countComments(n), nil
}

func (f fakeReviews) IncrementVotes(_ context.Context, id string, delta int) (*entity.Review, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	review, ok := f.s.reviews[n]
	if !ok {
		return nil, nil
	}
	review.Votes += delta
	cp := *review
	return &cp, nil
}

type fakeComments struct{ s *fakeStore }

func (f fakeComments) FindByReviewID(_ context.Context, reviewID string) ([]*entity.Comment, error) {
	n, err := parseID(reviewID)
	if err != nil {
		return nil, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	out := make([]*entity.Comment, 0)
	for _, c := range f.s.comments {
		if c.ReviewID == n {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeComments) Exists(_ context.Context, id string) (bool, error) {
	n, err := parseID(id)
	if err != nil {
		return false, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	_, ok := f.s.comments[n]
	return ok, nil
}

func (f fakeComments) Create(_ context.Context, reviewID, author, body string) (*entity.Comment, error) {
	n, err := parseID(reviewID)
	if err != nil {
		return nil, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if _, ok := f.s.reviews[n]; !ok {
		return nil, errors.New("foreign key violation")
	}
	c := &entity.Comment{
		CommentID: f.s.nextCommentID,
		ReviewID:  n,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now(),
	}
	f.s.comments[c.CommentID] = c
	f.s.nextCommentID++
	return c, nil
}

func (f fakeComments) Delete(_ context.Context, id string) (bool, error) {
	n, err := parseID(id)
	if err != nil {
		return false, err
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if _, ok := f.s.comments[n]; !ok {
		return false, nil
	}
	delete(f.s.comments, n)
	return true, nil
}
