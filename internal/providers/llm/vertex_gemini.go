package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  string
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &VertexGemini{client: c, model: modelName}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error) {
	// A fresh model handle per call: SystemInstruction is per-request state.
	m := v.client.GenerativeModel(v.model)
	m.SetMaxOutputTokens(250)
	m.SetTemperature(0.7)
	m.SetTopP(0.9)
	m.SetTopK(40)
	if systemPrompt != "" {
		m.SystemInstruction = &vertexgenai.Content{
			Parts: []vertexgenai.Part{vertexgenai.Text(systemPrompt)},
		}
	}

	cs := m.StartChat()
	for _, t := range history {
		role := "user"
		if t.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &vertexgenai.Content{
			Role:  role,
			Parts: []vertexgenai.Part{vertexgenai.Text(t.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, vertexgenai.Text(message))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty model response")
	}
	return sb.String(), nil
}

func (v *VertexGemini) Probe(ctx context.Context) error {
	m := v.client.GenerativeModel(v.model)
	m.SetMaxOutputTokens(10)
	_, err := m.GenerateContent(ctx, vertexgenai.Text("Say OK"))
	return err
}
