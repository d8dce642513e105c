package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"notesvc/internal/model"
	repoMocks "notesvc/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	fixed := time.Date(2024, 3, 15, 9, 30, 5, 123456789, time.UTC)
	origTimeNow := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = origTimeNow }()

	tests := []struct {
		name       string
		content    string
		setupMocks func(mRepo *repoMocks.MockNoteRepository)
		wantErr    error
		want       *model.Note
	}{
		{
			name:    "happy path",
			content: "Buy milk",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Insert", ctx, mock.MatchedBy(func(n *model.Note) bool {
					return n.Content == "Buy milk" && n.CreatedAt.Equal(fixed.Truncate(time.Second))
				})).Return(&model.Note{ID: 1, Content: "Buy milk", CreatedAt: fixed.Truncate(time.Second)}, nil)
			},
			want: &model.Note{ID: 1, Content: "Buy milk", CreatedAt: fixed.Truncate(time.Second)},
		},
		{
			name:    "surrounding whitespace is trimmed",
			content: "  Buy milk \n",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Insert", ctx, mock.MatchedBy(func(n *model.Note) bool {
					return n.Content == "Buy milk"
				})).Return(&model.Note{ID: 2, Content: "Buy milk"}, nil)
			},
			want: &model.Note{ID: 2, Content: "Buy milk"},
		},
		{
			name:       "empty content rejected",
			content:    "",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrEmptyContent,
		},
		{
			name:       "whitespace-only content rejected",
			content:    "   \t\n  ",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {},
			wantErr:    ErrEmptyContent,
		},
		{
			name:    "repository error propagates",
			content: "Buy milk",
			setupMocks: func(mRepo *repoMocks.MockNoteRepository) {
				mRepo.On("Insert", ctx, mock.Anything).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockNoteRepository)
			tt.setupMocks(mRepo)
			svc := NewNoteService(mRepo)

			got, err := svc.Create(ctx, tt.content)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.want != nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			default:
				assert.Error(t, err)
				assert.Nil(t, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns notes", func(t *testing.T) {
		mRepo := new(repoMocks.MockNoteRepository)
		notes := []model.Note{{ID: 2, Content: "second"}, {ID: 1, Content: "first"}}
		mRepo.On("List", ctx).Return(notes, nil)

		svc := NewNoteService(mRepo)
		got, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, notes, got)
	})

	t.Run("nil slice normalized to empty", func(t *testing.T) {
		mRepo := new(repoMocks.MockNoteRepository)
		mRepo.On("List", ctx).Return([]model.Note(nil), nil)

		svc := NewNoteService(mRepo)
		got, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mRepo := new(repoMocks.MockNoteRepository)
		mRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

		svc := NewNoteService(mRepo)
		got, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestNoteService_Ping(t *testing.T) {
	ctx := context.Background()

	t.Run("store up", func(t *testing.T) {
		mRepo := new(repoMocks.MockNoteRepository)
		mRepo.On("Ping", ctx).Return(nil)

		assert.NoError(t, NewNoteService(mRepo).Ping(ctx))
	})

	t.Run("store down", func(t *testing.T) {
		mRepo := new(repoMocks.MockNoteRepository)
		mRepo.On("Ping", ctx).Return(errors.New("connection refused"))

		assert.Error(t, NewNoteService(mRepo).Ping(ctx))
	})
}
