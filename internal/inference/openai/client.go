package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

const generateQuestionsSystemPrompt = `You are an expert quiz question generator that turns flashcards into multiple-choice questions.

GOAL
For EVERY flashcard in the input array, produce exactly ONE question. Return ONLY a JSON array, one object per input card, in the same order:
[
  {
    "flashcard_id": "<id of the source card>",
    "question": "<the question text>",
    "choices": [
      {"text": "...", "is_correct": true},
      {"text": "...", "is_correct": false},
      {"text": "...", "is_correct": false},
      {"text": "...", "is_correct": false}
    ]
  }
]

STRICT OUTPUT: No text outside the JSON. Booleans are true/false lowercase. The output array length MUST equal the input array length.

REQUIREMENTS
- Each question must have exactly 4 choices and exactly 1 correct choice
- The question tests the card's definition given its term, or vice versa
- Incorrect choices must be plausible but clearly wrong
- The correct answer must not be given away by the question text
- Do not repeat the same choice text within a question
- Copy "flashcard_id" verbatim from the input card's "id"`

const moderateFlashcardsSystemPrompt = `You are a content moderator for a flashcard publishing platform used by students of all ages.

GOAL
Review EVERY flashcard in the input array for policy violations: profanity, hate speech, sexual content, violence, harassment, self-harm, or instructions for wrongdoing. Academic discussion of sensitive topics (history, biology, law) is acceptable.

Return ONLY a JSON object:
{
  "is_appropriate": true or false,
  "moderation_decision": "<one sentence summarizing the overall decision>",
  "flagged_cards": [
    {"term": "<term of the violating card>", "definition": "<its definition>", "reason": "<why it was flagged>"}
  ]
}

STRICT OUTPUT: No text outside the JSON. "flagged_cards" MUST be an array, empty when nothing is flagged. "is_appropriate" is false when at least one card is flagged.`

// GenerateQuestions implements the inference.Client interface.
func (client *Client) GenerateQuestions(
	ctx context.Context,
	params inference.GenerateQuestionsRequest,
) (inference.GenerateQuestionsResponse, error) {
	var result inference.GenerateQuestionsResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateQuestions(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.GenerateQuestionsResponse{}, err
	}
	return result, nil
}

func (client *Client) generateQuestions(
	ctx context.Context,
	params inference.GenerateQuestionsRequest,
) (inference.GenerateQuestionsResponse, error) {
	if len(params.Cards) == 0 {
		return inference.GenerateQuestionsResponse{}, nil
	}

	userContent, err := json.Marshal(params.Cards)
	if err != nil {
		return inference.GenerateQuestionsResponse{}, fmt.Errorf("json.Marshal(cards) > %w", err)
	}

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: generateQuestionsSystemPrompt},
			{
				Role: RoleUser,
				Content: fmt.Sprintf("Generate exactly %d questions, one per card:\n%s",
					len(params.Cards), string(userContent)),
			},
		},
	}

	content, err := client.complete(ctx, requestBody)
	if err != nil {
		return inference.GenerateQuestionsResponse{}, err
	}

	var decoded []inference.GeneratedQuestion
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"cardCount", len(params.Cards),
			"error", err)
		return inference.GenerateQuestionsResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return inference.GenerateQuestionsResponse{Questions: decoded}, nil
}

// ModerateFlashcards implements the inference.Client interface.
func (client *Client) ModerateFlashcards(
	ctx context.Context,
	params inference.ModerateFlashcardsRequest,
) (inference.ModerateFlashcardsResponse, error) {
	var result inference.ModerateFlashcardsResponse
	if err := retry.Do(
		func() error {
			response, err := client.moderateFlashcards(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.ModerateFlashcardsResponse{}, err
	}
	return result, nil
}

func (client *Client) moderateFlashcards(
	ctx context.Context,
	params inference.ModerateFlashcardsRequest,
) (inference.ModerateFlashcardsResponse, error) {
	if len(params.Cards) == 0 {
		return inference.ModerateFlashcardsResponse{
			Verdict: inference.BatchVerdict{
				IsAppropriate:      true,
				FlaggedCards:       []inference.FlaggedCard{},
				ModerationDecision: "Content is appropriate",
			},
		}, nil
	}

	userContent, err := json.Marshal(params.Cards)
	if err != nil {
		return inference.ModerateFlashcardsResponse{}, fmt.Errorf("json.Marshal(cards) > %w", err)
	}

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.1,
		Messages: []Message{
			{Role: RoleSystem, Content: moderateFlashcardsSystemPrompt},
			{Role: RoleUser, Content: "Review these flashcards:\n" + string(userContent)},
		},
	}

	content, err := client.complete(ctx, requestBody)
	if err != nil {
		return inference.ModerateFlashcardsResponse{}, err
	}

	var decoded inference.BatchVerdict
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		return inference.ModerateFlashcardsResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return inference.ModerateFlashcardsResponse{Verdict: decoded}, nil
}

// complete posts a chat completion request and returns the first choice's content.
func (client *Client) complete(ctx context.Context, requestBody ChatCompletionRequest) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"model", requestBody.Model,
		"usage", responseBody.Usage,
	)

	return content, nil
}
