package service

import (
	"context"

	"go.uber.org/zap"

	"blogapi/internal/model"
)

// =============================================================================
// MOCK REPOSITORIES
// =============================================================================
//
// Services depend on repository interfaces, so each test swaps in a mock whose
// behaviour is defined by function fields. Unset fields fall back to a
// neutral default.

var testLogger = zap.NewNop()

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	existsByEmailFn    func(ctx context.Context, email string) (bool, error)
	deleteFn           func(ctx context.Context, id int64) error

	// Track calls for assertions
	createCalls      []*model.User
	existsEmailCalls int
	deleteCalls      []int64
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.existsEmailCalls++
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockPostRepository struct {
	createFn          func(ctx context.Context, post *model.Post) error
	getByIDFn         func(ctx context.Context, postID int64) (*model.Post, error)
	updateFn          func(ctx context.Context, post *model.Post) error
	deleteFn          func(ctx context.Context, postID int64) error
	existsFn          func(ctx context.Context, postID int64) (bool, error)
	listRecentFn      func(ctx context.Context, opts model.ListOptions) ([]model.Post, error)
	listByUserFn      func(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Post, error)
	listByFolloweesFn func(ctx context.Context, followerID int64, opts model.ListOptions) ([]model.Post, error)

	updateCalls []*model.Post
	deleteCalls []int64
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Update(ctx context.Context, post *model.Post) error {
	m.updateCalls = append(m.updateCalls, post)
	if m.updateFn != nil {
		return m.updateFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	m.deleteCalls = append(m.deleteCalls, postID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

func (m *mockPostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, postID)
	}
	return false, nil
}

func (m *mockPostRepository) ListRecent(ctx context.Context, opts model.ListOptions) ([]model.Post, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, opts)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Post, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, opts)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListByFollowees(ctx context.Context, followerID int64, opts model.ListOptions) ([]model.Post, error) {
	if m.listByFolloweesFn != nil {
		return m.listByFolloweesFn(ctx, followerID, opts)
	}
	return []model.Post{}, nil
}

type mockReplyRepository struct {
	createFn     func(ctx context.Context, reply *model.Reply) error
	getByIDFn    func(ctx context.Context, replyID int64) (*model.Reply, error)
	updateFn     func(ctx context.Context, reply *model.Reply) error
	deleteFn     func(ctx context.Context, replyID int64) error
	listByPostFn func(ctx context.Context, postID int64, opts model.ListOptions) ([]model.Reply, error)
	listByUserFn func(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error)

	createCalls []*model.Reply
	updateCalls []*model.Reply
	deleteCalls []int64
}

func (m *mockReplyRepository) Create(ctx context.Context, reply *model.Reply) error {
	m.createCalls = append(m.createCalls, reply)
	if m.createFn != nil {
		return m.createFn(ctx, reply)
	}
	return nil
}

func (m *mockReplyRepository) GetByID(ctx context.Context, replyID int64) (*model.Reply, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, replyID)
	}
	return nil, model.ErrReplyNotFound
}

func (m *mockReplyRepository) Update(ctx context.Context, reply *model.Reply) error {
	m.updateCalls = append(m.updateCalls, reply)
	if m.updateFn != nil {
		return m.updateFn(ctx, reply)
	}
	return nil
}

func (m *mockReplyRepository) Delete(ctx context.Context, replyID int64) error {
	m.deleteCalls = append(m.deleteCalls, replyID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, replyID)
	}
	return nil
}

func (m *mockReplyRepository) ListByPost(ctx context.Context, postID int64, opts model.ListOptions) ([]model.Reply, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID, opts)
	}
	return []model.Reply{}, nil
}

func (m *mockReplyRepository) ListByUser(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, opts)
	}
	return []model.Reply{}, nil
}

type mockFollowRepository struct {
	createFn       func(ctx context.Context, followerID, followeeID int64) (bool, error)
	deleteFn       func(ctx context.Context, followerID, followeeID int64) error
	existsFn       func(ctx context.Context, followerID, followeeID int64) (bool, error)
	getFollowersFn func(ctx context.Context, userID int64) ([]model.User, error)
	getFollowingFn func(ctx context.Context, userID int64) ([]model.User, error)

	createCalls int
	deleteCalls int
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followeeID int64) (bool, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followeeID)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followeeID)
	}
	return nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, followeeID)
	}
	return false, nil
}

func (m *mockFollowRepository) GetFollowers(ctx context.Context, userID int64) ([]model.User, error) {
	if m.getFollowersFn != nil {
		return m.getFollowersFn(ctx, userID)
	}
	return []model.User{}, nil
}

func (m *mockFollowRepository) GetFollowing(ctx context.Context, userID int64) ([]model.User, error) {
	if m.getFollowingFn != nil {
		return m.getFollowingFn(ctx, userID)
	}
	return []model.User{}, nil
}

func userByID(users ...*model.User) func(ctx context.Context, id int64) (*model.User, error) {
	return func(ctx context.Context, id int64) (*model.User, error) {
		for _, u := range users {
			if u.ID == id {
				return u, nil
			}
		}
		return nil, model.ErrUserNotFound
	}
}
