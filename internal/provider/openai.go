package provider

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider implements ChatProvider over the OpenAI chat completion
// API, as an alternative to the default Gemini backend.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenAIProvider(apiKey, model string, temperature float64, maxTokens int) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrUnavailable)
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: float32(temperature),
		maxTokens:   maxTokens,
	}, nil
}

func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) NewSession(ctx context.Context, systemInstruction string) (ChatSession, error) {
	return &openAISession{
		provider: p,
		messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
		},
	}, nil
}

// openAISession keeps the system instruction as the leading message and
// replays the full turn history with every completion request.
type openAISession struct {
	provider *OpenAIProvider
	messages []openai.ChatCompletionMessage
}

func (s *openAISession) Send(ctx context.Context, text string) (string, error) {
	messages := append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	resp, err := s.provider.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.provider.model,
		Messages:    messages,
		Temperature: s.provider.temperature,
		MaxTokens:   s.provider.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		s.messages = messages
		return EmptyReplyText, nil
	}

	reply := resp.Choices[0].Message.Content
	s.messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	return reply, nil
}
