package service

import (
	"context"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
)

// chatContextWindow bounds how many prior turns are sent to the model.
const chatContextWindow = 10

type ChatService struct {
	Chat *repository.ChatRepository
	AI   *AIService
}

func NewChatService(chat *repository.ChatRepository, ai *AIService) *ChatService {
	return &ChatService{Chat: chat, AI: ai}
}

func (s *ChatService) Messages(userID int) []model.ChatMessage {
	return s.Chat.ForUser(userID)
}

// Send persists the user's message, generates the coach reply from the last
// turns and persists it too. Both rows are returned as a pair.
func (s *ChatService) Send(ctx context.Context, userID int, text string) (model.ChatMessage, model.ChatMessage) {
	userMessage := s.Chat.Create(userID, text, true)

	history := s.Chat.ForUser(userID)
	if len(history) > chatContextWindow {
		history = history[len(history)-chatContextWindow:]
	}

	reply := s.AI.Reply(ctx, text, history)
	botMessage := s.Chat.Create(userID, reply, false)

	return userMessage, botMessage
}
