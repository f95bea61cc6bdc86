package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
)

// Gemini speaks the generateContent wire format of the Google AI API,
// which differs from the OpenAI one in roles, tool declarations and
// function-call encoding.
type Gemini struct {
	baseProvider
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		baseProvider: newBaseProvider("https://generativelanguage.googleapis.com", apiKey, model),
	}
}

type geminiPart struct {
	Text         string          `json:"text,omitempty"`
	FunctionCall *geminiFuncCall `json:"functionCall,omitempty"`
}

type geminiFuncCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

func (g *Gemini) Chat(ctx context.Context, history []core.Message, tools []core.Tool) (core.Message, error) {
	var systemParts []string
	var contents []geminiContent

	for _, m := range history {
		switch m.Role {
		case core.RoleSystem:
			systemParts = append(systemParts, m.Content)
		case core.RoleAssistant:
			contents = append(contents, geminiContent{
				Role:  "model",
				Parts: []geminiPart{{Text: m.Content}},
			})
		default:
			contents = append(contents, geminiContent{
				Role:  "user",
				Parts: []geminiPart{{Text: m.Content}},
			})
		}
	}

	payload := map[string]any{
		"contents": contents,
	}
	if len(systemParts) > 0 {
		payload["system_instruction"] = geminiContent{
			Parts: []geminiPart{{Text: strings.Join(systemParts, "\n\n")}},
		}
	}
	if len(tools) > 0 {
		decls := make([]map[string]any, 0, len(tools))
		for _, t := range tools {
			decls = append(decls, map[string]any{
				"name":        t.Function.Name,
				"description": t.Function.Description,
				"parameters":  t.Function.Parameters,
			})
		}
		payload["tools"] = []map[string]any{
			{"function_declarations": decls},
		}
	}

	headers := map[string]string{
		"x-goog-api-key": g.apiKey,
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", g.model)
	resp, err := g.doRequest(ctx, http.MethodPost, path, payload, headers)
	if err != nil {
		return core.Message{}, err
	}
	defer resp.Body.Close()

	return parseGeminiResponse(resp)
}

func parseGeminiResponse(resp *http.Response) (core.Message, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Message{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return core.Message{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []geminiPart `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return core.Message{}, fmt.Errorf("decode: %w", err)
	}
	if len(result.Candidates) == 0 {
		return core.Message{}, fmt.Errorf("empty candidates: %s", string(data))
	}

	msg := core.Message{Role: core.RoleAssistant}
	for i, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			msg.Content += part.Text
		}
		if part.FunctionCall != nil {
			args := part.FunctionCall.Args
			if len(args) == 0 {
				args = json.RawMessage("{}")
			}
			msg.ToolCalls = append(msg.ToolCalls, core.ToolCall{
				ID:   fmt.Sprintf("call_%d", i),
				Type: "function",
				Function: core.FunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(args),
				},
			})
		}
	}
	return msg, nil
}
