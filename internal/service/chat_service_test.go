package service

import (
	"context"
	"fmt"
	"testing"

	"nextstep_backend/internal/config"
	"nextstep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPersistsBothSidesOfTheExchange(t *testing.T) {
	var captured chatCompletionRequest
	srv := fakeCompletionServer(t, "Consider our resume module.", &captured)
	defer srv.Close()

	svc := NewChatService(repository.NewChatRepository(), aiServiceFor(srv.URL))

	userMsg, botMsg := svc.Send(context.Background(), 1, "How do I write a resume?")
	assert.True(t, userMsg.IsFromUser)
	assert.Equal(t, "How do I write a resume?", userMsg.Message)
	assert.False(t, botMsg.IsFromUser)
	assert.Equal(t, "Consider our resume module.", botMsg.Message)

	history := svc.Messages(1)
	require.Len(t, history, 2)
	assert.Equal(t, userMsg.ID, history[0].ID)
	assert.Equal(t, botMsg.ID, history[1].ID)
}

func TestSendBoundsTheContextWindow(t *testing.T) {
	var captured chatCompletionRequest
	srv := fakeCompletionServer(t, "ok", &captured)
	defer srv.Close()

	svc := NewChatService(repository.NewChatRepository(), aiServiceFor(srv.URL))

	for i := 0; i < 8; i++ {
		svc.Send(context.Background(), 1, fmt.Sprintf("message %d", i))
	}

	// system + at most 10 history turns + the current message.
	assert.Len(t, captured.Messages, 1+chatContextWindow+1)
}

func TestSendFallsBackWhenGatewayIsDown(t *testing.T) {
	svc := NewChatService(repository.NewChatRepository(), NewAIService(config.AIConfig{}))

	_, botMsg := svc.Send(context.Background(), 1, "hello?")
	assert.Equal(t, CoachFallback, botMsg.Message)

	require.Len(t, svc.Messages(1), 2)
}
