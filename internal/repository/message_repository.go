package repository

import (
	"context"
	"fmt"

	"message_board/internal/models"
	"message_board/internal/storage"
)

type MessageRepository interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, handle, body string) (*models.Message, error)
	All(ctx context.Context) ([]models.Message, error)
	RandomSample(ctx context.Context, n int) ([]models.Message, error)
}

type messageRepository struct {
	opener storage.Opener
}

func NewMessageRepository(opener storage.Opener) MessageRepository {
	return &messageRepository{opener: opener}
}

// withDB 為單次操作開啟連接並確保資料表存在，無論成功與否都會關閉連接
func (r *messageRepository) withDB(ctx context.Context, fn func(db *storage.DB) error) (err error) {
	db, err := r.opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %v", ErrStorageUnavailable, cerr)
		}
	}()

	if err := db.AutoMigrate(&models.Message{}); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrStorageUnavailable, err)
	}
	if err := fn(db); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (r *messageRepository) EnsureSchema(ctx context.Context) error {
	return r.withDB(ctx, func(*storage.DB) error { return nil })
}

// Insert 新增一則留言，不做任何內容檢查，空字串也會寫入
func (r *messageRepository) Insert(ctx context.Context, handle, body string) (*models.Message, error) {
	message := &models.Message{Handle: handle, Body: body}
	err := r.withDB(ctx, func(db *storage.DB) error {
		return db.Create(message).Error
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

// All 回傳所有留言，順序由資料庫的掃描順序決定
func (r *messageRepository) All(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.withDB(ctx, func(db *storage.DB) error {
		return db.Find(&messages).Error
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// RandomSample 隨機抽出最多 n 則不重複的留言，留言不足 n 則時全部回傳
func (r *messageRepository) RandomSample(ctx context.Context, n int) ([]models.Message, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, n)
	}

	messages := []models.Message{}
	err := r.withDB(ctx, func(db *storage.DB) error {
		if n == 0 {
			return nil
		}
		return db.Order("RANDOM()").Limit(n).Find(&messages).Error
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
