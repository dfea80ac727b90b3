package infra

//go:generate mockgen -source=openai.go -destination=../../handler/mock_summarizer_test.go -package=handler

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/pyama86/inquiry-relay/domain/model"
)

const defaultOpenAIModel = "gpt-4o-mini"

type Summarizer interface {
	// 担当者向けに問い合わせの要約を作る
	SummarizeInquiry(context.Context, *model.Inquiry) (string, error)
}

type OpenAI struct {
	client *openai.Client
	model  string
}

// 認証情報が無ければ nil を返す
func NewOpenAI() (*OpenAI, error) {
	if os.Getenv("OPENAI_API_KEY") == "" && os.Getenv("AZURE_OPENAI_KEY") == "" {
		return nil, nil
	}
	client, err := newOpenAIClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	m := os.Getenv("OPENAI_MODEL")
	if m == "" {
		m = defaultOpenAIModel
	}
	return &OpenAI{
		client: client,
		model:  m,
	}, nil
}

func newOpenAIClient() (*openai.Client, error) {
	if os.Getenv("AZURE_OPENAI_ENDPOINT") != "" {
		return newAzureClient()
	}

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	options := []option.RequestOption{
		option.WithAPIKey(key),
	}
	if os.Getenv("OPENAI_BASE_URL") != "" {
		options = append(options, option.WithBaseURL(os.Getenv("OPENAI_BASE_URL")))
	}

	c := openai.NewClient(options...)
	return &c, nil
}

func newAzureClient() (*openai.Client, error) {
	key := os.Getenv("AZURE_OPENAI_KEY")
	if key == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_KEY is not set")
	}
	var azureOpenAIEndpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")

	var azureOpenAIAPIVersion = "2025-01-01-preview"

	if os.Getenv("AZURE_OPENAI_API_VERSION") != "" {
		azureOpenAIAPIVersion = os.Getenv("AZURE_OPENAI_API_VERSION")
	}

	c := openai.NewClient(
		azure.WithEndpoint(azureOpenAIEndpoint, azureOpenAIAPIVersion),
		azure.WithAPIKey(key),
	)
	return &c, nil
}

func (o *OpenAI) SummarizeInquiry(ctx context.Context, inquiry *model.Inquiry) (string, error) {
	prompt := fmt.Sprintf(`## Request
The content below is an inquiry submitted through our travel agency's contact form.
Write a short triage note for the staff member who will answer it.

## Output format
- One line describing what the customer wants
- Urgency: low / normal / high
- Any dates, destinations or group sizes mentioned

## Inquiry
From: %s <%s>
%s
`,
		inquiry.Name,
		inquiry.Email,
		inquiry.Message,
	)

	response, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: o.model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
