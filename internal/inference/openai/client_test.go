package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

func chatResponse(content string) ChatCompletionResponse {
	return ChatCompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-4o-mini",
		Choices: []Choice{
			{
				Index: 0,
				Message: ChoiceMessage{
					Role:    RoleAssistant,
					Content: content,
				},
				FinishReason: "stop",
			},
		},
		Usage: Usage{
			PromptTokens:     100,
			CompletionTokens: 50,
			TotalTokens:      150,
		},
	}
}

func TestClient_GenerateQuestions(t *testing.T) {
	cards := []inference.SourceCard{
		{ID: "card-1", Term: "mitosis", Definition: "cell division"},
	}

	tests := []struct {
		name              string
		request           inference.GenerateQuestionsRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantQuestions   []inference.GeneratedQuestion
		wantError       bool
		wantErrorString string
	}{
		{
			name:    "Success with a single card",
			request: inference.GenerateQuestionsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody ChatCompletionRequest
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				assert.Equal(t, "gpt-4o-mini", reqBody.Model)
				require.Len(t, reqBody.Messages, 2)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.Contains(t, reqBody.Messages[1].Content, "card-1")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(chatResponse(`[{
					"flashcard_id": "card-1",
					"question": "What does mitosis mean?",
					"choices": [
						{"text": "cell division", "is_correct": true},
						{"text": "wrong a", "is_correct": false},
						{"text": "wrong b", "is_correct": false},
						{"text": "wrong c", "is_correct": false}
					]
				}]`))
			},
			wantQuestions: []inference.GeneratedQuestion{
				{
					FlashcardID: "card-1",
					Question:    "What does mitosis mean?",
					Choices: []inference.GeneratedChoice{
						{Text: "cell division", IsCorrect: true},
						{Text: "wrong a"},
						{Text: "wrong b"},
						{Text: "wrong c"},
					},
				},
			},
		},
		{
			name:    "Non-JSON payload fails",
			request: inference.GenerateQuestionsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(chatResponse("Sure! Here are your questions."))
			},
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
		{
			name:    "Client errors are not retried",
			request: inference.GenerateQuestionsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
			},
			wantError:       true,
			wantErrorString: "response error 401",
		},
		{
			name:    "Empty choices fails",
			request: inference.GenerateQuestionsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(ChatCompletionResponse{ID: "chatcmpl-123"})
			},
			wantError:       true,
			wantErrorString: "empty response body or choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				model:            "gpt-4o-mini",
				maxRetryAttempts: 1,
			}

			gotResponse, gotErr := client.GenerateQuestions(context.Background(), tt.request)
			if tt.wantError {
				require.Error(t, gotErr)
				if tt.wantErrorString != "" {
					assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				}
				return
			}

			require.NoError(t, gotErr)
			require.Equal(t, tt.wantQuestions, gotResponse.Questions)
		})
	}
}

func TestClient_GenerateQuestions_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(chatResponse(`[{
			"flashcard_id": "card-1",
			"question": "What does mitosis mean?",
			"choices": [
				{"text": "cell division", "is_correct": true},
				{"text": "wrong a", "is_correct": false},
				{"text": "wrong b", "is_correct": false},
				{"text": "wrong c", "is_correct": false}
			]
		}]`))
	}))
	defer server.Close()

	client := &Client{
		httpClient:       resty.New().SetBaseURL(server.URL),
		model:            "gpt-4o-mini",
		maxRetryAttempts: 2,
	}

	got, err := client.GenerateQuestions(context.Background(), inference.GenerateQuestionsRequest{
		Cards: []inference.SourceCard{{ID: "card-1", Term: "mitosis", Definition: "cell division"}},
	})
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ModerateFlashcards(t *testing.T) {
	cards := []inference.SourceCard{
		{ID: "card-1", Term: "mitosis", Definition: "cell division"},
	}

	tests := []struct {
		name              string
		request           inference.ModerateFlashcardsRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantVerdict     inference.BatchVerdict
		wantError       bool
		wantErrorString string
	}{
		{
			name:    "Appropriate deck",
			request: inference.ModerateFlashcardsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				var reqBody ChatCompletionRequest
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				require.Len(t, reqBody.Messages, 2)
				assert.Contains(t, reqBody.Messages[1].Content, "mitosis")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(chatResponse(`{
					"is_appropriate": true,
					"moderation_decision": "Content is appropriate",
					"flagged_cards": []
				}`))
			},
			wantVerdict: inference.BatchVerdict{
				IsAppropriate:      true,
				ModerationDecision: "Content is appropriate",
				FlaggedCards:       []inference.FlaggedCard{},
			},
		},
		{
			name:    "Flagged deck",
			request: inference.ModerateFlashcardsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(chatResponse(`{
					"is_appropriate": false,
					"moderation_decision": "Contains offensive language",
					"flagged_cards": [
						{"term": "mitosis", "definition": "cell division", "reason": "offensive"}
					]
				}`))
			},
			wantVerdict: inference.BatchVerdict{
				IsAppropriate:      false,
				ModerationDecision: "Contains offensive language",
				FlaggedCards: []inference.FlaggedCard{
					{Term: "mitosis", Definition: "cell division", Reason: "offensive"},
				},
			},
		},
		{
			name:    "Non-JSON payload fails",
			request: inference.ModerateFlashcardsRequest{Cards: cards},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(chatResponse("Everything looks fine to me!"))
			},
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				model:            "gpt-4o-mini",
				maxRetryAttempts: 1,
			}

			gotResponse, gotErr := client.ModerateFlashcards(context.Background(), tt.request)
			if tt.wantError {
				require.Error(t, gotErr)
				if tt.wantErrorString != "" {
					assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				}
				return
			}

			require.NoError(t, gotErr)
			require.Equal(t, tt.wantVerdict, gotResponse.Verdict)
		})
	}
}

func TestClient_ModerateFlashcards_EmptyCards(t *testing.T) {
	// No HTTP call happens for an empty batch.
	client := &Client{
		httpClient:       resty.New().SetBaseURL("http://127.0.0.1:1"),
		model:            "gpt-4o-mini",
		maxRetryAttempts: 1,
	}

	got, err := client.ModerateFlashcards(context.Background(), inference.ModerateFlashcardsRequest{})
	require.NoError(t, err)
	assert.True(t, got.Verdict.IsAppropriate)
	assert.Empty(t, got.Verdict.FlaggedCards)
}
