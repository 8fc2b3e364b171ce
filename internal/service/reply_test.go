package service

import (
	"context"
	"errors"
	"testing"

	"blogapi/internal/model"
)

func existingPost(id int64) *mockPostRepository {
	return &mockPostRepository{
		existsFn: func(ctx context.Context, postID int64) (bool, error) {
			return postID == id, nil
		},
	}
}

func ownedReplyRepo() *mockReplyRepository {
	return &mockReplyRepository{
		getByIDFn: func(ctx context.Context, replyID int64) (*model.Reply, error) {
			if replyID != 3 {
				return nil, model.ErrReplyNotFound
			}
			return &model.Reply{ID: 3, Body: "first", UserID: 1, Username: "zak", PostID: 8}, nil
		},
	}
}

func TestReplyService_Create(t *testing.T) {
	tests := []struct {
		name        string
		postID      int64
		wantErr     error
		wantCreates int
	}{
		{name: "existing post", postID: 8, wantCreates: 1},
		{name: "missing post", postID: 9, wantErr: model.ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := &mockReplyRepository{}
			svc := NewReplyService(replies, existingPost(8), &mockUserRepository{}, testLogger)

			reply, err := svc.Create(context.Background(), &model.User{ID: 2, Username: "amy"}, tt.postID,
				model.CreateReplyRequest{Body: "nice"})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			} else if reply.PostID != tt.postID || reply.Username != "amy" {
				t.Errorf("unexpected reply: %+v", reply)
			}

			if len(replies.createCalls) != tt.wantCreates {
				t.Errorf("Create called %d times, want %d", len(replies.createCalls), tt.wantCreates)
			}
		})
	}
}

func TestReplyService_UpdateAndDelete_Ownership(t *testing.T) {
	tests := []struct {
		name     string
		callerID int64
		replyID  int64
		wantErr  error
	}{
		{name: "owner", callerID: 1, replyID: 3},
		{name: "another user", callerID: 2, replyID: 3, wantErr: model.ErrNotReplyOwner},
		{name: "missing reply", callerID: 1, replyID: 4, wantErr: model.ErrReplyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := ownedReplyRepo()
			svc := NewReplyService(replies, existingPost(8), &mockUserRepository{}, testLogger)

			updated, err := svc.Update(context.Background(), tt.callerID, tt.replyID, model.UpdateReplyRequest{Body: "edited"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("update error = %v, want %v", err, tt.wantErr)
				}
				if len(replies.updateCalls) != 0 {
					t.Error("reply should be unchanged on failure")
				}
			} else if updated.Body != "edited" {
				t.Errorf("body = %q, want edited", updated.Body)
			}

			err = svc.Delete(context.Background(), tt.callerID, tt.replyID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("delete error = %v, want %v", err, tt.wantErr)
				}
				if len(replies.deleteCalls) != 0 {
					t.Error("Delete should not be called on failure")
				}
			} else if err != nil {
				t.Errorf("unexpected delete error: %v", err)
			}
		})
	}
}

func TestReplyService_ListByPost_MissingPost(t *testing.T) {
	svc := NewReplyService(&mockReplyRepository{}, existingPost(8), &mockUserRepository{}, testLogger)

	_, err := svc.ListByPost(context.Background(), 99, model.DefaultListOptions())
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrPostNotFound)
	}

	replies, err := svc.ListByPost(context.Background(), 8, model.DefaultListOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replies == nil {
		t.Error("expected empty list, got nil")
	}
}

func TestReplyService_ListByUser(t *testing.T) {
	users := &mockUserRepository{getByIDFn: userByID(&model.User{ID: 1})}
	replies := &mockReplyRepository{
		listByUserFn: func(ctx context.Context, userID int64, opts model.ListOptions) ([]model.Reply, error) {
			return []model.Reply{{ID: 1, UserID: userID}}, nil
		},
	}
	svc := NewReplyService(replies, existingPost(8), users, testLogger)

	got, err := svc.ListByUser(context.Background(), 1, model.DefaultListOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d replies, want 1", len(got))
	}

	if _, err := svc.ListByUser(context.Background(), 2, model.DefaultListOptions()); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}
