package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"message_board/internal/models"
	"message_board/pkg/config"
)

type fakeRepository struct {
	inserted []models.Message
	samples  []int
	allCalls int
}

func (f *fakeRepository) EnsureSchema(context.Context) error { return nil }

func (f *fakeRepository) Insert(_ context.Context, handle, body string) (*models.Message, error) {
	m := models.Message{ID: uint(len(f.inserted) + 1), Handle: handle, Body: body}
	f.inserted = append(f.inserted, m)
	return &m, nil
}

func (f *fakeRepository) All(context.Context) ([]models.Message, error) {
	f.allCalls++
	return f.inserted, nil
}

func (f *fakeRepository) RandomSample(_ context.Context, n int) ([]models.Message, error) {
	f.samples = append(f.samples, n)
	return nil, nil
}

func TestMessageService_SampleSizes(t *testing.T) {
	req := require.New(t)
	repo := &fakeRepository{}
	svc := NewMessageService(repo, config.BoardConfig{HomeSample: 3, ViewSample: 5})
	ctx := context.Background()

	_, err := svc.HomeMessages(ctx)
	req.NoError(err)
	_, err = svc.RandomMessages(ctx)
	req.NoError(err)
	req.Equal([]int{3, 5}, repo.samples)
}

func TestMessageService_Resubmission_Creates_New_Rows(t *testing.T) {
	req := require.New(t)
	repo := &fakeRepository{}
	svc := NewMessageService(repo, config.BoardConfig{})
	ctx := context.Background()

	first, err := svc.Submit(ctx, "bob", "hi")
	req.NoError(err)
	second, err := svc.Submit(ctx, "bob", "hi")
	req.NoError(err)
	req.NotEqual(first.ID, second.ID)

	all, err := svc.AllMessages(ctx)
	req.NoError(err)
	req.Len(all, 2)
	req.Equal(1, repo.allCalls)
}
