package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docqa/internal/ai"
	"docqa/internal/store"
)

// contextBudget is the fixed number of characters of document content placed
// in the prompt. Content beyond it is cut, not chunked.
const contextBudget = 3000

const promptTemplate = `Based on this document, answer the question.

Document:
%s

Question: %s

Answer:`

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrQuestionEmpty    = errors.New("question is empty")
	ErrProviderFailure  = errors.New("llm provider call failed")
)

// AskService answers questions about a stored document with a single
// synchronous call to the chat-completion provider. No retries.
type AskService struct {
	store     *store.DocumentStore
	llmClient *ai.OpenAICompatibleClient
	chatCfg   ai.ChatConfig
}

func NewAskService(docStore *store.DocumentStore, llmClient *ai.OpenAICompatibleClient, chatCfg ai.ChatConfig) *AskService {
	return &AskService{
		store:     docStore,
		llmClient: llmClient,
		chatCfg:   chatCfg,
	}
}

type AskInput struct {
	Question   string
	DocumentID string
}

type AskResult struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	DocumentID string `json:"document_id"`
}

func (s *AskService) Ask(ctx context.Context, input AskInput) (*AskResult, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, ErrQuestionEmpty
	}

	doc, ok := s.store.Get(input.DocumentID)
	if !ok {
		return nil, ErrDocumentNotFound
	}

	prompt := fmt.Sprintf(promptTemplate, truncate(doc.Content, contextBudget), input.Question)
	messages := []ai.ChatMessage{{Role: "user", Content: prompt}}

	answer, err := s.llmClient.Complete(ctx, s.chatCfg, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderFailure, err)
	}

	// Answer is returned exactly as the provider produced it.
	return &AskResult{
		Question:   input.Question,
		Answer:     answer,
		DocumentID: input.DocumentID,
	}, nil
}

// truncate cuts s to at most limit characters (runes, not bytes).
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
