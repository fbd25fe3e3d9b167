package aistudio

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"devbady/utils"

	"github.com/julienschmidt/httprouter"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-3-pro-preview"

	systemInstruction = "You are the devbady Intelligence Engine. You specialize in " +
		"high-performance coding, enterprise architecture, and technical documentation. " +
		"Keep responses concise, precise, and professional. Use markdown for code blocks."

	// fallbackMessage is what the chat shows on any provider failure. The
	// UI never sees a raw provider error.
	fallbackMessage = "ERROR: NEURAL LINK FAILED. CHECK API PROTOCOLS."
)

// Turn is one entry of the conversation history.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Handlers proxy chat requests to the hosted generative API.
type Handlers struct {
	client *genai.Client
	model  string
}

// NewHandlers builds the proxy. A missing API key is not fatal: the chat
// stays up and answers every prompt with the fallback message.
func NewHandlers(ctx context.Context) *Handlers {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, AI studio will serve fallback responses")
		return &Handlers{model: model}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Printf("Failed to create GenAI client: %v", err)
		return &Handlers{model: model}
	}
	return &Handlers{client: client, model: model}
}

// Chat accepts the conversation so far plus a new prompt and returns the
// model's reply. One retry on failure, then the fallback message.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		History []Turn `json:"history"`
		Prompt  string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Prompt == "" {
		http.Error(w, "Prompt is required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r.Context(), payload.History, payload.Prompt)
	if err != nil {
		log.Printf("AI chat failed: %v", err)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"text": fallbackMessage})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"text": text})
}

func (h *Handlers) generate(ctx context.Context, history []Turn, prompt string) (string, error) {
	if h.client == nil {
		return "", fmt.Errorf("no GenAI client configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	// One bounded retry: hosted-API hiccups are common enough that a single
	// second attempt is worth it, anything more just delays the fallback.
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}

		result, err := h.client.Models.GenerateContent(ctx, h.model, contents, config)
		if err != nil {
			lastErr = fmt.Errorf("generate content: %w", err)
			continue
		}
		text := result.Text()
		if text == "" {
			lastErr = fmt.Errorf("empty response from model")
			continue
		}
		return text, nil
	}
	return "", lastErr
}
