package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bilgisen/newspulse/internal/models"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-3-flash-preview"
)

var (
	ErrNoContent        = errors.New("no content in response")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

type GeminiClient struct {
	client  *resty.Client
	apiKey  string
	model   string
	baseURL string
}

// GeminiOption customizes a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(baseURL string) GeminiOption {
	return func(g *GeminiClient) {
		g.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout bounds every generate call.
func WithTimeout(timeout time.Duration) GeminiOption {
	return func(g *GeminiClient) {
		g.client.SetTimeout(timeout)
	}
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	Tools            []geminiTool            `json:"tools,omitempty"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text    string `json:"text"`
				Thought bool   `json:"thought,omitempty"`
			} `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []models.Citation `json:"groundingChunks"`
		} `json:"groundingMetadata,omitempty"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewGeminiClient(apiKey, model string, opts ...GeminiOption) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}
	g := &GeminiClient{
		client:  resty.New().SetTimeout(60 * time.Second),
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the model identifier sent with every request.
func (g *GeminiClient) Model() string {
	return g.model
}

// Generate runs one grounded generate call. The search tool is always
// enabled; a JSON response is requested only when req carries a schema.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)

	var result, apiErr geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(buildGeminiRequest(req)).
		SetResult(&result).
		SetError(&apiErr).
		Post(url)

	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	if resp.IsError() {
		if apiErr.Error != nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	if result.Error != nil {
		return nil, fmt.Errorf("API error: %s", result.Error.Message)
	}

	if len(result.Candidates) == 0 {
		return nil, ErrNoContent
	}

	candidate := result.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}

	out := &Response{Text: text.String()}
	if candidate.GroundingMetadata != nil {
		out.Citations = candidate.GroundingMetadata.GroundingChunks
	}
	return out, nil
}

func buildGeminiRequest(req Request) geminiRequest {
	body := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{{
				Text: req.Instruction,
			}},
		}},
		Tools: []geminiTool{{GoogleSearch: &struct{}{}}},
	}
	if req.Structured() {
		body.GenerationConfig = &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}
	return body
}
