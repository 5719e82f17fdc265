package provider

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// GeminiProvider implements ChatProvider on top of the Google GenAI API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider builds a provider keyed by the given API credential.
// An empty key is reported as ErrUnavailable so callers can surface the
// missing-configuration condition rather than fall back silently.
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float64) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrUnavailable)
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

func (p *GeminiProvider) Model() string { return p.model }

func (p *GeminiProvider) NewSession(ctx context.Context, systemInstruction string) (ChatSession, error) {
	temp := p.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       &temp,
	}
	return &geminiSession{provider: p, config: cfg}, nil
}

// geminiSession holds the conversation history and replays it with every
// request, which keeps the model's view of turn ordering identical to the
// order messages were sent in.
type geminiSession struct {
	provider *GeminiProvider
	config   *genai.GenerateContentConfig
	history  []*genai.Content
}

func (s *geminiSession) Send(ctx context.Context, text string) (string, error) {
	contents := make([]*genai.Content, 0, len(s.history)+1)
	contents = append(contents, s.history...)
	contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))

	res, err := s.provider.client.Models.GenerateContent(ctx, s.provider.model, contents, s.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	reply := res.Text()
	if reply == "" {
		reply = EmptyReplyText
	}

	s.history = append(contents, genai.NewContentFromText(reply, genai.RoleModel))
	return reply, nil
}
