package assistant

import "context"

// TextCompleter is the opaque text-completion backend.
type TextCompleter interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssistantService answers free-form support messages.
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
}
