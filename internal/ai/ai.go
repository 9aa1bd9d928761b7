package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/config"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

// maxPasteChars caps the raw page dump sent for title extraction.
const maxPasteChars = 20000

// Prescription is the AI-written part of the final diagnosis.
type Prescription struct {
	SummaryText string
	Keyword     string
	SearchQuery string
}

// Doctor extracts watch-history titles from user input and writes the
// prescription for a finished analysis.
type Doctor interface {
	ExtractTitles(ctx context.Context, pasted string) ([]string, error)
	ExtractFromImages(ctx context.Context, images []string) ([]string, error)
	Prescribe(ctx context.Context, diagnosis string, excess, lacking nutrient.Category) (Prescription, error)
}

// New creates a Doctor from the given AI config.
func New(cfg *config.AIConfig, apiKey string) (Doctor, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("AI not configured")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: apiKey, model: model, client: client}, nil
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o"
		}
		return &openaiProvider{apiKey: apiKey, model: model, client: client}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: claude, openai)", cfg.Provider)
	}
}

const cleaningPrompt = `You are a YouTube Page Text Cleaner.
The user has pasted the raw text dump from YouTube Home/History.

Task:
1. Extract ONLY the video titles. Remove 'Views', 'Time', 'Channel Name', 'Menu items'.
2. CRITICAL: Identify the 'Shorts' section. If a title belongs to the Shorts section (usually appears after the word 'Shorts' or has no duration/timestamp), APPEND '[Shorts]' to the end of the title.
(Example: "Funny Cat Video [Shorts]", "How to cook steak")

Return the titles as a simple list separated by commas.`

const ocrPrompt = `You are an advanced AI OCR assistant specialized in YouTube UI analysis.

Task:
1. Read the screen screenshots and extract ALL video titles accurately.
2. Do NOT pick only keywords. Extract the FULL title sentences.
3. Ignore UI texts like 'Home', 'Shorts', 'Subscriptions', 'Views', 'Time'.

CRITICAL - Shorts Detection:
- If a video is under a header explicitly named "Shorts",
- OR if the thumbnail has a vertical aspect ratio (9:16) AND has the red "Shorts" logo,
- THEN append "[Shorts]" to the end of the title.
- OTHERWISE, do NOT append "[Shorts]".

Output Format:
Return a simple list of strings separated by commas.
Example: "How to cook steak, Funny Cat [Shorts], Global Economy News, ..."`

const prescribePrompt = `You are a YouTube content analysis expert. Generate a diagnosis about the user's YouTube viewing habits.

[Analysis Data]
- Diagnosis Name: %s
- EXCESS Nutrient (Too much): %s
- LACKING Nutrient (Need more): %s

CRITICAL INSTRUCTIONS:
1. OUTPUT LANGUAGE: MUST BE KOREAN (한국어).
2. Prescription Goal: The user consumes too much '%s'. Prescribe content related to '%s' to balance the diet.
3. Search Query Rule: In 'youtube_search_query', suggest video topics for the LACKING nutrient. DO NOT recommend the EXCESS one.
4. Word Ban: Do NOT use words '비타민', '단백질', '탄수화물', '지방' in keyword/query.

Task:
1. 'Prescription Keyword': Catchy keyword for the LACKING nutrient.
2. 'Summary': Diagnosis summary. Mention excess/lack.
3. 'YouTube Search Query': Specific topics for the LACKING nutrient.

IMPORTANT: You MUST return the result in the following JSON format. Do not change the keys.
{
    "prescription_keyword": "A short, metaphorical title in Korean for the user (e.g., 'Mental Detox', 'Art Vitamin')",
    "summary_text": "Diagnosis summary in Korean",
    "youtube_search_query": "A CONCRETE search query in Korean for YouTube. (e.g., 'Funny cat videos', 'Travel vlog', 'ASMR rain sounds'). This must be different from prescription_keyword."
}`

// nutrientDescription maps a category to the English phrasing used in
// the prescription prompt.
func nutrientDescription(c nutrient.Category) string {
	switch c {
	case nutrient.Carbs:
		return "Fun/Entertainment (Comedy, Variety)"
	case nutrient.Protein:
		return "Knowledge/Learning (Lecture, News)"
	case nutrient.Fats:
		return "Rest/Healing (ASMR, Music)"
	case nutrient.Vitamins:
		return "Diversity/Art (Travel, Culture)"
	default:
		return string(c)
	}
}

func buildPrescribePrompt(diagnosis string, excess, lacking nutrient.Category) string {
	return fmt.Sprintf(prescribePrompt, diagnosis,
		nutrientDescription(excess), nutrientDescription(lacking),
		nutrientDescription(excess), nutrientDescription(lacking))
}

// parseTitleList splits a comma-separated model response into titles.
// List punctuation the model sometimes adds is stripped first.
func parseTitleList(text string) []string {
	text = strings.NewReplacer("[", "", "]", "", `"`, "").Replace(text)
	var titles []string
	for _, t := range strings.Split(text, ",") {
		t = strings.TrimSpace(t)
		if utf8.RuneCountInString(t) > 1 {
			titles = append(titles, t)
		}
	}
	return titles
}

type prescriptionJSON struct {
	Keyword     string `json:"prescription_keyword"`
	SummaryText string `json:"summary_text"`
	SearchQuery string `json:"youtube_search_query"`
}

// parsePrescription decodes the model's JSON answer and fills in the
// fixed fallbacks so the diagnosis screen never renders blank fields.
func parsePrescription(text string) Prescription {
	// Some models wrap JSON in a code fence even when told not to.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var pj prescriptionJSON
	_ = json.Unmarshal([]byte(text), &pj)

	p := Prescription{
		SummaryText: pj.SummaryText,
		Keyword:     pj.Keyword,
		SearchQuery: pj.SearchQuery,
	}
	if p.SummaryText == "" {
		p.SummaryText = "진단 내용을 불러오지 못했습니다."
	}
	if p.Keyword == "" {
		p.Keyword = "디지털 밸런스"
	}
	if p.SearchQuery == "" || p.SearchQuery == p.Keyword {
		p.SearchQuery = p.Keyword + " 추천 영상"
	}
	return p
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// --- Claude provider ---

type claudeProvider struct {
	apiKey string
	model  string
	client *http.Client
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string        `json:"role"`
	Content []claudeBlock `json:"content"`
}

type claudeBlock struct {
	Type   string        `json:"type"`
	Text   string        `json:"text,omitempty"`
	Source *claudeSource `json:"source,omitempty"`
}

type claudeSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *claudeProvider) ExtractTitles(ctx context.Context, pasted string) ([]string, error) {
	text, err := c.call(ctx, cleaningPrompt, []claudeBlock{
		{Type: "text", Text: truncateRunes(pasted, maxPasteChars)},
	}, 2000)
	if err != nil {
		return nil, err
	}
	return parseTitleList(text), nil
}

func (c *claudeProvider) ExtractFromImages(ctx context.Context, images []string) ([]string, error) {
	blocks := make([]claudeBlock, 0, len(images)+1)
	for _, img := range images {
		blocks = append(blocks, claudeBlock{
			Type: "image",
			Source: &claudeSource{
				Type:      "base64",
				MediaType: "image/jpeg",
				Data:      img,
			},
		})
	}
	blocks = append(blocks, claudeBlock{Type: "text", Text: ocrPrompt})

	text, err := c.call(ctx, "You are an AI that extracts text from UI screenshots.", blocks, 1000)
	if err != nil {
		return nil, err
	}
	return parseTitleList(text), nil
}

func (c *claudeProvider) Prescribe(ctx context.Context, diagnosis string, excess, lacking nutrient.Category) (Prescription, error) {
	text, err := c.call(ctx, "", []claudeBlock{
		{Type: "text", Text: buildPrescribePrompt(diagnosis, excess, lacking)},
	}, 500)
	if err != nil {
		return Prescription{}, err
	}
	return parsePrescription(text), nil
}

func (c *claudeProvider) call(ctx context.Context, system string, blocks []claudeBlock, maxTokens int) (string, error) {
	body, _ := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []claudeMessage{{Role: "user", Content: blocks}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("claude API %d: %s", resp.StatusCode, string(b))
	}

	var cr claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Content) == 0 {
		return "", fmt.Errorf("empty claude response")
	}
	return cr.Content[0].Text, nil
}

// --- OpenAI provider ---

type openaiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

type openaiRequest struct {
	Model          string          `json:"model"`
	Messages       []openaiMessage `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *openaiRespFmt  `json:"response_format,omitempty"`
}

type openaiRespFmt struct {
	Type string `json:"type"`
}

// openaiMessage content is either a plain string or a part list when
// images are attached.
type openaiMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openaiImagePart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openaiImageURL `json:"image_url,omitempty"`
}

type openaiImageURL struct {
	URL string `json:"url"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiProvider) ExtractTitles(ctx context.Context, pasted string) ([]string, error) {
	text, err := o.call(ctx, openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: cleaningPrompt},
			{Role: "user", Content: truncateRunes(pasted, maxPasteChars)},
		},
		MaxTokens: 2000,
	})
	if err != nil {
		return nil, err
	}
	return parseTitleList(text), nil
}

func (o *openaiProvider) ExtractFromImages(ctx context.Context, images []string) ([]string, error) {
	parts := make([]openaiImagePart, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, openaiImagePart{
			Type:     "image_url",
			ImageURL: &openaiImageURL{URL: "data:image/jpeg;base64," + img},
		})
	}
	parts = append(parts, openaiImagePart{Type: "text", Text: ocrPrompt})

	zero := 0.0
	text, err := o.call(ctx, openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: "You are an AI that extracts text from UI screenshots."},
			{Role: "user", Content: parts},
		},
		MaxTokens:   1000,
		Temperature: &zero,
	})
	if err != nil {
		return nil, err
	}
	return parseTitleList(text), nil
}

func (o *openaiProvider) Prescribe(ctx context.Context, diagnosis string, excess, lacking nutrient.Category) (Prescription, error) {
	zero := 0.0
	text, err := o.call(ctx, openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: buildPrescribePrompt(diagnosis, excess, lacking)},
		},
		MaxTokens:      500,
		Temperature:    &zero,
		ResponseFormat: &openaiRespFmt{Type: "json_object"},
	})
	if err != nil {
		return Prescription{}, err
	}
	return parsePrescription(text), nil
}

func (o *openaiProvider) call(ctx context.Context, reqBody openaiRequest) (string, error) {
	body, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai API %d: %s", resp.StatusCode, string(b))
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", err
	}
	if len(or.Choices) == 0 {
		return "", fmt.Errorf("empty openai response")
	}
	return or.Choices[0].Message.Content, nil
}
