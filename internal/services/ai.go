package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/project-admin/internal/models"
)

// ModuloSugerido is one module proposed for a system.
type ModuloSugerido struct {
	Nombre      string `json:"Nombre"`
	Descripcion string `json:"Descripcion"`
}

// Sugeridor proposes modules for a system.
type Sugeridor interface {
	SugerirModulos(ctx context.Context, sistema models.Sistema, existentes []string) ([]ModuloSugerido, error)
}

// chatCompleter is the part of the OpenAI client AIService needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type AIService struct {
	client chatCompleter
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SugerirModulos asks the model for the functional modules a system usually has.
func (s *AIService) SugerirModulos(ctx context.Context, sistema models.Sistema, existentes []string) ([]ModuloSugerido, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	actuales := "ninguno"
	if len(existentes) > 0 {
		actuales = strings.Join(existentes, ", ")
	}

	prompt := fmt.Sprintf(`Eres un analista de sistemas. Propón los módulos funcionales que necesita el siguiente sistema.

Sistema: %s
Descripción: %s
Módulos actuales: %s

Devuelve un arreglo JSON con este formato:
[
  {
    "Nombre": "Nombre corto del módulo",
    "Descripcion": "Qué resuelve el módulo en una oración"
  }
]

Notas:
- No repitas los módulos actuales
- Máximo 10 módulos
- Si no hay nada que sugerir devuelve []
- Devuelve sólo el JSON, sin texto adicional`, sistema.Nombre, sistema.Descripcion, actuales)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := limpiarJSON(resp.Choices[0].Message.Content)

	var modulos []ModuloSugerido
	if err := json.Unmarshal([]byte(content), &modulos); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return modulos, nil
}

// limpiarJSON strips a markdown code fence around the payload.
func limpiarJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
