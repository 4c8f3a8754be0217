package application

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
)

// In-memory repositories backing the service tests. Get methods return
// copies so mutations only land through Update, matching decode semantics.
type fakeStore struct {
	users    map[primitive.ObjectID]*entity.User
	posts    map[primitive.ObjectID]*entity.Post
	comments map[primitive.ObjectID]*entity.Comment

	commentOrder []primitive.ObjectID
	clock        time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[primitive.ObjectID]*entity.User{},
		posts:    map[primitive.ObjectID]*entity.Post{},
		comments: map[primitive.ObjectID]*entity.Comment{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick hands out strictly increasing timestamps so ordering is deterministic.
func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type fakeUsers struct{ *fakeStore }
type fakePosts struct{ *fakeStore }
type fakeComments struct{ *fakeStore }

func newFakes() (*fakeUsers, *fakePosts, *fakeComments) {
	s := newFakeStore()
	return &fakeUsers{s}, &fakePosts{s}, &fakeComments{s}
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

/* users */

func (r *fakeUsers) Create(_ context.Context, u *entity.User) error {
	for _, other := range r.users {
		if other.Username == u.Username || other.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := r.tick()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUsers) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUsers) GetByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.User, error) {
	out := make(map[primitive.ObjectID]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *fakeUsers) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = r.tick()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUsers) List(_ context.Context, f repository.UserFilter) ([]entity.User, int64, error) {
	var all []entity.User
	for _, u := range r.users {
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			hay := strings.ToLower(u.Username + " " + u.FirstName + " " + u.LastName + " " + u.Email)
			if !strings.Contains(hay, s) {
				continue
			}
		}
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	return window(all, f.Skip, f.Limit), total, nil
}

func (r *fakeUsers) DeleteCascade(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	owned := map[primitive.ObjectID]bool{}
	for pid, p := range r.posts {
		if p.AuthorID == id {
			owned[pid] = true
		}
	}
	for cid, c := range r.comments {
		if c.AuthorID == id || owned[c.PostID] {
			delete(r.comments, cid)
		}
	}
	for pid := range owned {
		delete(r.posts, pid)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUsers) Count(context.Context) (int64, error) { return int64(len(r.users)), nil }

/* posts */

func (r *fakePosts) Create(_ context.Context, p *entity.Post) error {
	for _, other := range r.posts {
		if other.Slug == p.Slug {
			return repository.ErrDuplicate
		}
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := r.tick()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Likes == nil {
		p.Likes = []primitive.ObjectID{}
	}
	if p.Comments == nil {
		p.Comments = []primitive.ObjectID{}
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePosts) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePosts) GetBySlug(_ context.Context, slug string) (*entity.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePosts) Update(_ context.Context, p *entity.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, other := range r.posts {
		if other.ID != p.ID && other.Slug == p.Slug {
			return repository.ErrDuplicate
		}
	}
	p.UpdatedAt = r.tick()
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePosts) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	p, ok := r.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Views++
	return nil
}

func (r *fakePosts) List(_ context.Context, f repository.PostFilter) ([]entity.Post, int64, error) {
	var all []entity.Post
	for _, p := range r.posts {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Tag != "" && !contains(p.Tags, f.Tag) {
			continue
		}
		if !f.AuthorID.IsZero() && p.AuthorID != f.AuthorID {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Title), s) && !strings.Contains(strings.ToLower(p.Content), s) {
				continue
			}
		}
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool {
		if f.SortBy == repository.SortByPublishedAt {
			return ptime(all[i]).After(ptime(all[j]))
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	total := int64(len(all))
	return window(all, f.Skip, f.Limit), total, nil
}

func (r *fakePosts) RecentByAuthor(_ context.Context, authorID primitive.ObjectID, limit int64) ([]entity.Post, error) {
	out, _, err := r.List(context.Background(), repository.PostFilter{
		AuthorID: authorID,
		Status:   entity.StatusPublished,
		SortBy:   repository.SortByPublishedAt,
		Limit:    limit,
	})
	return out, err
}

func (r *fakePosts) DeleteWithComments(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	for cid, c := range r.comments {
		if c.PostID == id {
			delete(r.comments, cid)
		}
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePosts) Count(context.Context) (int64, error) { return int64(len(r.posts)), nil }

/* comments */

func (r *fakeComments) Create(_ context.Context, c *entity.Comment) error {
	p, ok := r.posts[c.PostID]
	if !ok {
		return repository.ErrNotFound
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	now := r.tick()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	r.comments[c.ID] = &cp
	r.commentOrder = append(r.commentOrder, c.ID)
	p.Comments = append(p.Comments, c.ID)
	return nil
}

func (r *fakeComments) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeComments) ListByPost(_ context.Context, postID primitive.ObjectID) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, id := range r.commentOrder {
		if c, ok := r.comments[id]; ok && c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeComments) Delete(_ context.Context, id primitive.ObjectID) error {
	c, ok := r.comments[id]
	if !ok {
		return repository.ErrNotFound
	}
	if p, ok := r.posts[c.PostID]; ok {
		kept := p.Comments[:0]
		for _, cid := range p.Comments {
			if cid != id {
				kept = append(kept, cid)
			}
		}
		p.Comments = kept
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeComments) CountByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (r *fakeComments) Count(context.Context) (int64, error) { return int64(len(r.comments)), nil }

/* admin */

type fakeAdmin struct{ *fakeStore }

func (r *fakeAdmin) ClearAll(context.Context) error {
	r.users = map[primitive.ObjectID]*entity.User{}
	r.posts = map[primitive.ObjectID]*entity.Post{}
	r.comments = map[primitive.ObjectID]*entity.Comment{}
	r.commentOrder = nil
	return nil
}

/* helpers */

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func ptime(p entity.Post) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return time.Time{}
}

func window[T any](all []T, skip, limit int64) []T {
	if skip >= int64(len(all)) {
		return nil
	}
	all = all[skip:]
	if limit > 0 && limit < int64(len(all)) {
		all = all[:limit]
	}
	return all
}

// Interface conformance.
var (
	_ repository.UserRepository    = (*fakeUsers)(nil)
	_ repository.PostRepository    = (*fakePosts)(nil)
	_ repository.CommentRepository = (*fakeComments)(nil)
	_ repository.AdminRepository   = (*fakeAdmin)(nil)
)
