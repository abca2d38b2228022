package repository

import "message_board/internal/storage"

type Repositories struct {
	Message MessageRepository
}

func NewRepositories(opener storage.Opener) *Repositories {
	return &Repositories{
		Message: NewMessageRepository(opener),
	}
}
