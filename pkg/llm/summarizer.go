// Package llm turns raw article text into short display summaries via an
// OpenAI-compatible endpoint.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsgrid/pkg/config"
	"github.com/umputun/newsgrid/pkg/provider"
)

// Summarizer produces article summaries and image suggestions. Summarize is
// a total function, any upstream failure returns the original content with
// the Failed flag instead of an error.
type Summarizer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewSummarizer creates an LLM summarizer
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Summarizer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for article summarization
const defaultSystemPrompt = `You are a news editor producing short summaries for a regional news board.
Given an article's title and content, respond with a JSON object:
{
  "summary": "50-70 word neutral summary of the article",
  "suggestedImageUrl": "absolute URL of a fitting illustrative image, or empty string"
}

Rules for the summary:
- 50 to 70 words, single paragraph
- Neutral tone, no editorializing
- Write directly about the content itself. NEVER use phrases like "The article discusses" or "This piece covers". Start with the actual subject matter.
- Same language as the article content

Output JSON only, no other text.`

// Request carries one article into summarization
type Request struct {
	Title     string
	Content   string
	Category  string
	Link      string // article identity, used for the placeholder image
	ImageHint string // image URL supplied by the source, may be empty
}

// Result is the summarization outcome, always populated
type Result struct {
	Summary  string
	ImageURL string
	Failed   bool
}

// summaryResponse is the structured payload expected from the model
type summaryResponse struct {
	Summary           string `json:"summary"`
	SuggestedImageURL string `json:"suggestedImageUrl"`
}

// Summarize sends the article to the model and returns the summary with a
// resolved image. It never returns an error: transport failures, bad
// statuses and unparsable payloads all degrade to the original content with
// Failed set.
func (s *Summarizer) Summarize(ctx context.Context, req Request) Result {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: s.buildPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		log.Printf("[WARN] summarization request failed for %q: %v", req.Title, err)
		return s.failed(req)
	}
	if len(resp.Choices) == 0 {
		log.Printf("[WARN] no response from llm for %q", req.Title)
		return s.failed(req)
	}

	parsed, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[WARN] unparsable summarization response for %q: %v", req.Title, err)
		return s.failed(req)
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" {
		log.Printf("[WARN] empty summary for %q", req.Title)
		return s.failed(req)
	}

	return Result{
		Summary:  summary,
		ImageURL: resolveImage(req, parsed.SuggestedImageURL),
		Failed:   false,
	}
}

// failed returns the original content untouched with the failure flag set
func (s *Summarizer) failed(req Request) Result {
	return Result{
		Summary:  req.Content,
		ImageURL: resolveImage(req, ""),
		Failed:   true,
	}
}

// maxPromptContent caps the article text sent to the model
const maxPromptContent = 4000

// buildPrompt creates the user prompt for one article
func (s *Summarizer) buildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Category: %s\n", req.Category))
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.Title))

	content := req.Content
	if len(content) > maxPromptContent {
		cut := maxPromptContent
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut-- // keep the cut on a rune boundary
		}
		content = content[:cut] + "..."
	}
	sb.WriteString(fmt.Sprintf("Content: %s\n", content))
	return sb.String()
}

// parseResponse decodes the structured payload, tolerating models that wrap
// the JSON object in prose
func parseResponse(content string) (summaryResponse, error) {
	var parsed summaryResponse
	if err := json.Unmarshal([]byte(content), &parsed); err == nil {
		return parsed, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return parsed, fmt.Errorf("no json object found in response")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return parsed, fmt.Errorf("parse json response: %w", err)
	}
	return parsed, nil
}

// resolveImage applies the precedence: source image, then the model's
// suggestion, then a deterministic placeholder
func resolveImage(req Request, suggested string) string {
	if validImageURL(req.ImageHint) {
		return req.ImageHint
	}
	if validImageURL(suggested) {
		return suggested
	}
	return provider.PlaceholderImage(req.Category, req.Link)
}

// validImageURL reports whether s is a syntactically valid absolute http(s) URL
func validImageURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
}
