package service

import (
	"context"

	"message_board/internal/models"
	"message_board/internal/repository"
	"message_board/pkg/config"
)

// MessageService 決定每個頁面要讀取哪些留言
type MessageService struct {
	messageRepo repository.MessageRepository
	homeSample  int
	viewSample  int
}

func NewMessageService(messageRepo repository.MessageRepository, board config.BoardConfig) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		homeSample:  board.HomeSample,
		viewSample:  board.ViewSample,
	}
}

// Submit 儲存一則新留言，重複送出會產生新的一筆
func (s *MessageService) Submit(ctx context.Context, handle, body string) (*models.Message, error) {
	return s.messageRepo.Insert(ctx, handle, body)
}

// HomeMessages 首頁顯示的隨機留言
func (s *MessageService) HomeMessages(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.RandomSample(ctx, s.homeSample)
}

// RandomMessages 隨機留言頁面顯示的留言
func (s *MessageService) RandomMessages(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.RandomSample(ctx, s.viewSample)
}

func (s *MessageService) AllMessages(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.All(ctx)
}

func (s *MessageService) EnsureSchema(ctx context.Context) error {
	return s.messageRepo.EnsureSchema(ctx)
}
