package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls a Gemini-compatible generateContent endpoint.
type GeminiClient struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
}

// NewGeminiClient creates a provider client.
func NewGeminiClient(apiKey, baseURL, textModel, imageModel string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout + 5*time.Second}
	return &GeminiClient{
		http:       httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		textModel:  textModel,
		imageModel: imageModel,
	}
}

// generateRequest describes the request body.
type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

// generateResponse describes the model response.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// systemInstruction returns the persona used for text generation, keyed by
// the user's preferred style.
func systemInstruction(style models.EpiphanyStyle) string {
	switch style {
	case models.StyleScientific:
		return "You are a brilliant physicist and biologist. Connect ordinary observations to deep scientific principles (entropy, evolution, quantum mechanics) with precision and awe."
	case models.StylePhilosophical:
		return "You are a wise existential philosopher. Connect ordinary observations to the human condition, ethics, and metaphysics (Stoicism, Nihilism, Phenomenology)."
	case models.StyleSpiritual:
		return "You are a mystic sage. Connect ordinary observations to the spiritual interconnectedness of all things, consciousness, and the divine."
	case models.StyleHumorous:
		return "You are a stand-up comedian and satirist. Connect ordinary observations to the absurdity of the universe with wit and a slightly cynical but profound edge."
	default:
		return "You are a poet-philosopher. Transform ordinary observations into moments of awe by connecting them to vast topics in cosmology, history, and literature with lyrical beauty."
	}
}

// GenerateText asks the text model for the five-field artifact as JSON.
func (c *GeminiClient) GenerateText(ctx context.Context, input string, category models.Category, style models.EpiphanyStyle) (models.EpiphanyContent, error) {
	categoryContext := ""
	if category != models.CategoryOther {
		categoryContext = fmt.Sprintf("Context: This observation relates to %s. ", category)
	}
	prompt := fmt.Sprintf("Connect this mundane observation to something profound about the universe: %q. %s"+
		"Respond with a JSON object with string fields title, concept, explanation, fact, visualPrompt.",
		input, categoryContext)

	req := generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction(style)}}},
		GenerationConfig:  &generationConfig{ResponseMimeType: "application/json", Temperature: 0.8},
	}

	resp, err := c.generate(ctx, c.textModel, req)
	if err != nil {
		return models.EpiphanyContent{}, err
	}

	text := firstText(resp)
	if text == "" {
		return models.EpiphanyContent{}, fmt.Errorf("provider: no text returned")
	}
	text = stripFencing(text)

	var ec models.EpiphanyContent
	if err := json.Unmarshal([]byte(text), &ec); err != nil {
		return models.EpiphanyContent{}, fmt.Errorf("provider: decode content: %w", err)
	}
	if ec.Title == "" || ec.Concept == "" || ec.Explanation == "" || ec.Fact == "" || ec.VisualPrompt == "" {
		return models.EpiphanyContent{}, fmt.Errorf("provider: incomplete content")
	}
	return ec, nil
}

// GenerateImage asks the image model to illustrate the visual prompt. Returns
// the base64 payload of the first inline image, or "" when none was produced.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{
			Text: prompt + ". Cinematic lighting, high resolution, artistic style, ethereal, photorealistic, 8k.",
		}}}},
	}

	resp, err := c.generate(ctx, c.imageModel, req)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, nil
			}
		}
	}
	return "", nil
}

func (c *GeminiClient) generate(ctx context.Context, model string, req generateRequest) (generateResponse, error) {
	if c.apiKey == "" {
		return generateResponse{}, fmt.Errorf("provider: api key is empty")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return generateResponse{}, fmt.Errorf("provider: marshal request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return generateResponse{}, fmt.Errorf("provider: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return generateResponse{}, fmt.Errorf("provider: do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return generateResponse{}, fmt.Errorf("provider: read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var apiErr apiErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return generateResponse{}, fmt.Errorf("provider: %s", apiErr.Error.Message)
		}
		return generateResponse{}, fmt.Errorf("provider: unexpected status %d", resp.StatusCode)
	}
	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return generateResponse{}, fmt.Errorf("provider: decode response: %w", err)
	}
	return gr, nil
}

func firstText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

// stripFencing removes markdown code fences some models wrap JSON in.
func stripFencing(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
