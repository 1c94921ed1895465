package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAIProvider generates replies through the chat completions API. It
// serves both OpenAI and OpenAI-compatible gateways such as OpenRouter.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	name   string
}

// NewOpenAIProvider builds a provider for OpenAI or any compatible BaseURL.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	return newChatProvider("openai", cfg.APIKey, cfg.BaseURL, cfg.Model)
}

// NewOpenRouterProvider builds a provider for OpenRouter. Model names are
// vendor-qualified, e.g. "google/gemini-2.0-flash-exp".
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	return newChatProvider("openrouter", cfg.APIKey, base, cfg.Model)
}

func newChatProvider(name, apiKey, baseURL, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(conf), model: model, name: name}, nil
}

func (p *OpenAIProvider) Name() string    { return p.name }
func (p *OpenAIProvider) ModelID() string { return p.model }

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chat := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            chatMessages(req),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("encode schema %s: %w", req.Schema.Name, err)
		}
		chat.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chat)
	if err != nil {
		return nil, p.classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Kind: KindInvalidOutput, Provider: p.name, Err: errors.New("reply has no choices")}
	}

	choice := resp.Choices[0]
	stop := StopEnd
	if choice.FinishReason == openai.FinishReasonLength {
		stop = StopMaxTokens
	}
	usage := Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	return finish(p.name, req, choice.Message.Content, usage, resp.Model, stop)
}

func (p *OpenAIProvider) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(p.name, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(p.name, reqErr.HTTPStatusCode, err)
	}
	return statusError(p.name, 0, err)
}

func chatMessages(req Request) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		out = append(out, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
