package recipe

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// systemPrompt pins the reply language and the three-section layout the
// parser understands. Sauce/dressing ingredients are folded into the
// ingredients section instead of forming a fourth one.
const systemPrompt = `You are a data extraction assistant. ` +
	`Always respond in Russian, regardless of the input language. ` +
	`Your reply must strictly follow this format, with no explanations or greetings:` + "\n\n" +
	`Название рецепта: <название>` + "\n" +
	`Рецепт:` + "\n" + `1. <step one>` + "\n" + `2. <step two>` + "\n" + `...` + "\n" +
	`Ингредиенты:` + "\n" + `- <ingredient 1>` + "\n" + `- <ingredient 2>` + "\n" + `...` + "\n\n" +
	`Do not add anything else. If the recipe includes a sauce or dressing, ` +
	`include its ingredients in the list.`

// errorTitle marks a run where the model was reached for but never
// answered, as opposed to answering with unparseable text.
const errorTitle = "Ошибка при отправке запроса"

// Extract issues one chat-completion request and parses the reply.
func (e *implExtractor) Extract(ctx context.Context, description, transcript string) (string, string, string) {
	prompt := fmt.Sprintf("Description: %s\n\nRecognized text: %s", description, transcript)

	content, err := e.generate(ctx, prompt)
	if err != nil {
		e.logger.Error(ctx, "recipe extraction request failed: %v", err)
		return errorTitle, "", ""
	}

	reply := ParseReply(content)
	return reply.Title, reply.Instructions, reply.Ingredients
}

// generate calls Gemini, rotating API keys on 429 / quota errors.
func (e *implExtractor) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(e.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	var lastErr error
	for range attempts {
		key, keyIdx := e.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			e.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				e.logger.Warn(ctx, "key %d rate limited, rotating...", keyIdx+1)
				e.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// key returns the active API key under the lock; concurrent runs share
// the rotation position.
func (e *implExtractor) key() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apiKeys[e.currentKey], e.currentKey
}

func (e *implExtractor) rotateKey() {
	e.mu.Lock()
	e.currentKey = (e.currentKey + 1) % len(e.apiKeys)
	e.mu.Unlock()
}
