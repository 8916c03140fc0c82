package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"nextstep_backend/internal/config"
	"nextstep_backend/internal/model"
	"nextstep_backend/pkg/logger"

	"go.uber.org/zap"
)

// AIService talks to an OpenAI-compatible chat completion endpoint. Every
// failure is absorbed into a fallback payload: the chat and recommendation
// features must never surface an upstream error to the client.
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// UpdateConfig swaps the gateway settings, used by config hot reload.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *AIService) cfg() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []aiChatMessage `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const coachPersona = `You are Ara, an AI career coach for high school students on the 'Your Next Step' educational platform.
Your purpose is to provide personalized career guidance, education planning, and skill development advice.

Be conversational, encouraging, and focused on helping students:
- Explore career paths based on their interests
- Understand education requirements for different careers
- Develop relevant skills while still in high school
- Prepare for college applications and interviews
- Build confidence in their career journey

Keep responses concise, practical, and tailored for high school students.
When appropriate, mention the platform's modules or curriculum that might help them.
Always maintain an optimistic, supportive tone that motivates students to engage with career exploration.`

// CoachFallback is returned whenever a reply cannot be generated.
const CoachFallback = "I'm currently having trouble connecting to my knowledge base. Let's try a different question, or you can try again later."

// Reply generates a coach reply to userMessage given the prior turns,
// oldest first. It never fails; on any error the fixed fallback is returned.
func (s *AIService) Reply(ctx context.Context, userMessage string, history []model.ChatMessage) string {
	messages := make([]aiChatMessage, 0, len(history)+2)
	messages = append(messages, aiChatMessage{Role: "system", Content: coachPersona})
	for _, h := range history {
		role := "assistant"
		if h.IsFromUser {
			role = "user"
		}
		messages = append(messages, aiChatMessage{Role: role, Content: h.Message})
	}
	messages = append(messages, aiChatMessage{Role: "user", Content: userMessage})

	reply, err := s.complete(ctx, chatCompletionRequest{
		Model:       s.cfg().Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		logger.Log.Warn("AI chat reply failed, using fallback", zap.Error(err))
		return CoachFallback
	}
	return reply
}

// RecommendationContent is one career suggestion as produced by the model
// (or the fallback list), not yet bound to a user.
type RecommendationContent struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	MatchScore      int    `json:"matchScore"`
	FieldOfStudy    string `json:"fieldOfStudy"`
	AvgSalary       int    `json:"avgSalary"`
	EduRequirements string `json:"eduRequirements"`
}

// CareerRecommendations asks the model for three career paths matching the
// student's interests and completed modules. On any failure it returns the
// static fallback list, identical in shape to the generated one.
func (s *AIService) CareerRecommendations(ctx context.Context, interests, completedModules []string) []RecommendationContent {
	prompt := fmt.Sprintf(`Based on a student's interests (%s)
and completed educational modules (%s),
suggest 3 potential career paths. For each career, provide:
1. Job title
2. Brief description (1-2 sentences)
3. Match score (0-100)
4. Field of study
5. Average salary
6. Education requirements

Respond with a JSON object of the form {"recommendations": [{"title": ..., "description": ..., "matchScore": ..., "fieldOfStudy": ..., "avgSalary": ..., "eduRequirements": ...}]}.`,
		strings.Join(interests, ", "), strings.Join(completedModules, ", "))

	raw, err := s.complete(ctx, chatCompletionRequest{
		Model: s.cfg().Model,
		Messages: []aiChatMessage{
			{Role: "system", Content: "You are a career recommendation AI that provides targeted career suggestions for high school students."},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.5,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err == nil {
		var parsed struct {
			Recommendations []RecommendationContent `json:"recommendations"`
		}
		if jsonErr := json.Unmarshal([]byte(raw), &parsed); jsonErr == nil && len(parsed.Recommendations) == 3 {
			return parsed.Recommendations
		}
		err = fmt.Errorf("unexpected recommendation payload: %.100s", raw)
	}

	logger.Log.Warn("AI career recommendations failed, using fallback", zap.Error(err))
	return fallbackRecommendations()
}

func fallbackRecommendations() []RecommendationContent {
	return []RecommendationContent{
		{
			Title:           "Software Developer",
			Description:     "Design and develop computer applications",
			MatchScore:      85,
			FieldOfStudy:    "Computer Science",
			AvgSalary:       105000,
			EduRequirements: "Bachelor's degree in Computer Science",
		},
		{
			Title:           "Marketing Specialist",
			Description:     "Create and implement marketing strategies",
			MatchScore:      75,
			FieldOfStudy:    "Marketing, Business",
			AvgSalary:       65000,
			EduRequirements: "Bachelor's degree in Marketing or Business",
		},
		{
			Title:           "Healthcare Administrator",
			Description:     "Manage healthcare facilities and services",
			MatchScore:      70,
			FieldOfStudy:    "Healthcare Administration",
			AvgSalary:       80000,
			EduRequirements: "Bachelor's degree in Healthcare Administration",
		},
	}
}

func (s *AIService) complete(ctx context.Context, reqBody chatCompletionRequest) (string, error) {
	cfg := s.cfg()
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return "", errors.New("AI gateway not configured")
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", errors.New(result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("AI returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
