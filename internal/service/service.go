package service

import (
	"message_board/internal/repository"
	"message_board/pkg/config"
)

type Services struct {
	MessageService *MessageService
}

func NewServices(repos *repository.Repositories, board config.BoardConfig) *Services {
	return &Services{
		MessageService: NewMessageService(repos.Message, board),
	}
}
