package http

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blogapi/internal/model"
)

// memStore is an in-memory stand-in for Postgres used by the router tests.
// Timestamps advance one second per insert so ordering is deterministic.
type memStore struct {
	mu      sync.Mutex
	clock   time.Time
	nextID  int64
	users   map[int64]model.User
	posts   map[int64]model.Post
	replies map[int64]model.Reply
	follows map[[2]int64]bool
}

func newMemStore() *memStore {
	return &memStore{
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:   map[int64]model.User{},
		posts:   map[int64]model.Post{},
		replies: map[int64]model.Reply{},
		follows: map[[2]int64]bool{},
	}
}

func (s *memStore) repositories() Repositories {
	return Repositories{
		Users:   memUsers{s},
		Posts:   memPosts{s},
		Replies: memReplies{s},
		Follows: memFollows{s},
	}
}

func (s *memStore) tick() (int64, time.Time) {
	s.nextID++
	s.clock = s.clock.Add(time.Second)
	return s.nextID, s.clock
}

func page[T any](items []T, created func(T) time.Time, opts model.ListOptions) []T {
	sort.SliceStable(items, func(i, j int) bool {
		if opts.NewestFirst {
			return created(items[i]).After(created(items[j]))
		}
		return created(items[i]).Before(created(items[j]))
	})

	out := make([]T, 0)
	for i := opts.Skip; i < len(items) && len(out) < opts.Limit; i++ {
		out = append(out, items[i])
	}
	return out
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return model.ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return model.ErrEmailTaken
		}
	}
	u.ID, u.CreatedAt = r.s.tick()
	r.s.users[u.ID] = *u
	return nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}

func (r memUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r memUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	return err == nil, nil
}

func (r memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return model.ErrUserNotFound
	}
	for rid, reply := range r.s.replies {
		if reply.UserID == id || r.s.posts[reply.PostID].UserID == id {
			delete(r.s.replies, rid)
		}
	}
	for pid, post := range r.s.posts {
		if post.UserID == id {
			delete(r.s.posts, pid)
		}
	}
	for edge := range r.s.follows {
		if edge[0] == id || edge[1] == id {
			delete(r.s.follows, edge)
		}
	}
	delete(r.s.users, id)
	return nil
}

type memPosts struct{ s *memStore }

func (r memPosts) Create(_ context.Context, p *model.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID, p.DateCreated = r.s.tick()
	r.s.posts[p.ID] = *p
	return nil
}

func (r memPosts) GetByID(_ context.Context, postID int64) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return &p, nil
}

func (r memPosts) Update(_ context.Context, p *model.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[p.ID]; !ok {
		return model.ErrPostNotFound
	}
	_, now := r.s.tick()
	p.DateModified = &now
	r.s.posts[p.ID] = *p
	return nil
}

func (r memPosts) Delete(_ context.Context, postID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[postID]; !ok {
		return model.ErrPostNotFound
	}
	for rid, reply := range r.s.replies {
		if reply.PostID == postID {
			delete(r.s.replies, rid)
		}
	}
	delete(r.s.posts, postID)
	return nil
}

func (r memPosts) Exists(_ context.Context, postID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.posts[postID]
	return ok, nil
}

func (r memPosts) ListRecent(_ context.Context, opts model.ListOptions) ([]model.Post, error) {
	return r.filter(opts, func(model.Post) bool { return true }), nil
}

func (r memPosts) ListByUser(_ context.Context, userID int64, opts model.ListOptions) ([]model.Post, error) {
	return r.filter(opts, func(p model.Post) bool { return p.UserID == userID }), nil
}

func (r memPosts) ListByFollowees(_ context.Context, followerID int64, opts model.ListOptions) ([]model.Post, error) {
	return r.filter(opts, func(p model.Post) bool { return r.s.follows[[2]int64{followerID, p.UserID}] }), nil
}

func (r memPosts) filter(opts model.ListOptions, keep func(model.Post) bool) []model.Post {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []model.Post
	for _, p := range r.s.posts {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return page(matched, func(p model.Post) time.Time { return p.DateCreated }, opts)
}

type memReplies struct{ s *memStore }

func (r memReplies) Create(_ context.Context, reply *model.Reply) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reply.ID, reply.DateCreated = r.s.tick()
	r.s.replies[reply.ID] = *reply
	return nil
}

func (r memReplies) GetByID(_ context.Context, replyID int64) (*model.Reply, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reply, ok := r.s.replies[replyID]
	if !ok {
		return nil, model.ErrReplyNotFound
	}
	return &reply, nil
}

func (r memReplies) Update(_ context.Context, reply *model.Reply) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.replies[reply.ID]; !ok {
		return model.ErrReplyNotFound
	}
	_, now := r.s.tick()
	reply.DateModified = &now
	r.s.replies[reply.ID] = *reply
	return nil
}

func (r memReplies) Delete(_ context.Context, replyID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.replies[replyID]; !ok {
		return model.ErrReplyNotFound
	}
	delete(r.s.replies, replyID)
	return nil
}

func (r memReplies) ListByPost(_ context.Context, postID int64, opts model.ListOptions) ([]model.Reply, error) {
	return r.filter(opts, func(reply model.Reply) bool { return reply.PostID == postID }), nil
}

func (r memReplies) ListByUser(_ context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error) {
	return r.filter(opts, func(reply model.Reply) bool { return reply.UserID == userID }), nil
}

func (r memReplies) filter(opts model.ListOptions, keep func(model.Reply) bool) []model.Reply {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []model.Reply
	for _, reply := range r.s.replies {
		if keep(reply) {
			matched = append(matched, reply)
		}
	}
	return page(matched, func(reply model.Reply) time.Time { return reply.DateCreated }, opts)
}

type memFollows struct{ s *memStore }

func (r memFollows) Create(_ context.Context, followerID, followeeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	edge := [2]int64{followerID, followeeID}
	if r.s.follows[edge] {
		return false, nil
	}
	r.s.follows[edge] = true
	return true, nil
}

func (r memFollows) Delete(_ context.Context, followerID, followeeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	edge := [2]int64{followerID, followeeID}
	if !r.s.follows[edge] {
		return model.ErrNotFollowing
	}
	delete(r.s.follows, edge)
	return nil
}

func (r memFollows) Exists(_ context.Context, followerID, followeeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.follows[[2]int64{followerID, followeeID}], nil
}

func (r memFollows) GetFollowers(_ context.Context, userID int64) ([]model.User, error) {
	return r.neighbours(func(edge [2]int64) (int64, bool) { return edge[0], edge[1] == userID }), nil
}

func (r memFollows) GetFollowing(_ context.Context, userID int64) ([]model.User, error) {
	return r.neighbours(func(edge [2]int64) (int64, bool) { return edge[1], edge[0] == userID }), nil
}

func (r memFollows) neighbours(match func(edge [2]int64) (int64, bool)) []model.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]model.User, 0)
	for edge := range r.s.follows {
		if id, ok := match(edge); ok {
			users = append(users, r.s.users[id])
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
