package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nextstep_backend/internal/config"
	"nextstep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletionServer answers every chat completion with the given content.
func fakeCompletionServer(t *testing.T, content string, capture *chatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func aiServiceFor(url string) *AIService {
	return NewAIService(config.AIConfig{BaseURL: url, APIKey: "test-key", Model: "test-model"})
}

func TestReplySendsPersonaAndHistory(t *testing.T) {
	var captured chatCompletionRequest
	srv := fakeCompletionServer(t, "Great question!", &captured)
	defer srv.Close()

	svc := aiServiceFor(srv.URL)
	history := []model.ChatMessage{
		{Message: "hi", IsFromUser: true},
		{Message: "hello there", IsFromUser: false},
	}

	reply := svc.Reply(context.Background(), "what should I study?", history)
	assert.Equal(t, "Great question!", reply)

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "assistant", captured.Messages[2].Role)
	assert.Equal(t, "what should I study?", captured.Messages[3].Content)
}

func TestReplyFallsBackWhenUnconfigured(t *testing.T) {
	svc := NewAIService(config.AIConfig{})
	reply := svc.Reply(context.Background(), "hello", nil)
	assert.Equal(t, CoachFallback, reply)
}

func TestReplyFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := aiServiceFor(srv.URL)
	reply := svc.Reply(context.Background(), "hello", nil)
	assert.Equal(t, CoachFallback, reply)
}

func TestCareerRecommendationsParsesModelOutput(t *testing.T) {
	payload := map[string]interface{}{
		"recommendations": []RecommendationContent{
			{Title: "Data Analyst", Description: "d", MatchScore: 90, FieldOfStudy: "Statistics", AvgSalary: 70000, EduRequirements: "Bachelor's"},
			{Title: "UX Designer", Description: "d", MatchScore: 80, FieldOfStudy: "Design", AvgSalary: 75000, EduRequirements: "Bachelor's"},
			{Title: "Nurse", Description: "d", MatchScore: 70, FieldOfStudy: "Nursing", AvgSalary: 80000, EduRequirements: "Bachelor's"},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	srv := fakeCompletionServer(t, string(raw), nil)
	defer srv.Close()

	svc := aiServiceFor(srv.URL)
	recs := svc.CareerRecommendations(context.Background(), []string{"Skill Building"}, []string{"Resume Building Fundamentals"})
	require.Len(t, recs, 3)
	assert.Equal(t, "Data Analyst", recs[0].Title)
}

func TestCareerRecommendationsFallbackOnBadPayload(t *testing.T) {
	srv := fakeCompletionServer(t, `{"recommendations": []}`, nil)
	defer srv.Close()

	svc := aiServiceFor(srv.URL)
	recs := svc.CareerRecommendations(context.Background(), nil, nil)
	require.Len(t, recs, 3)
	assert.Equal(t, "Software Developer", recs[0].Title)
	assert.Equal(t, 105000, recs[0].AvgSalary)
	assert.Equal(t, "Marketing Specialist", recs[1].Title)
	assert.Equal(t, "Healthcare Administrator", recs[2].Title)
}
