// Package llm produces the Markdown summary of a document's text through
// a locally served Ollama model.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// promptTemplate instructs the model to answer in Portuguese with a fixed
// Markdown shape: title, summary and keyword sections. %s receives the
// document text.
const promptTemplate = `Sua tarefa é resumir textos, formatar tudo em Markdown e identificar palavras-chave.

## REGRAS
- Responda sempre em Português-BR
- Baseie-se exclusivamente no texto fornecido.
- Mantenha a organização do documento em Markdown.
- Não invente informações que não existam no texto original.

## INSTRUÇÕES DE SAÍDA
Você deve produzir um único documento em Markdown contendo:
- ## **[Título do texto]** (retirado do texto; caso não exista, gerar um título a partir do conteúdo)
- ## **Resumo** (claro, objetivo e fiel ao conteúdo)
- ## **Palavras-chave** (lista de 3 a 8 palavras relevantes)

## TEXTO PARA RESUMO
"%s"
`

// Summarizer holds a configured model client.
type Summarizer struct {
	llm *ollama.LLM
}

// NewSummarizer connects to the Ollama server at serverURL and targets
// the named model.
func NewSummarizer(serverURL, model string) (*Summarizer, error) {
	client, err := ollama.New(
		ollama.WithModel(model),
		ollama.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &Summarizer{llm: client}, nil
}

// Summarize sends the document text to the model and returns its Markdown
// answer. Fails when the server is unreachable or the model is missing.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, text)
	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("summarization failed: %w", err)
	}
	return strings.TrimSpace(completion), nil
}

// BuildPrompt returns the prompt Summarize sends for the given text.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
