package assistant

import (
	"context"
	"fmt"
	"strings"
)

// emergencyKeywords trigger the crisis-line response without contacting the
// completion backend.
var emergencyKeywords = []string{
	"harm", "suicide", "die", "kill myself", "end it all", "help", "emergency",
}

// DefaultAssistantService proxies chat messages to the completion backend,
// short-circuiting messages that look like an emergency.
type DefaultAssistantService struct {
	Client     TextCompleter
	CrisisLine string
}

// Chat returns the assistant's reply for a student message.
func (s *DefaultAssistantService) Chat(ctx context.Context, message string) (string, error) {
	if isEmergency(message) {
		return s.emergencyReply(), nil
	}
	reply, err := s.Client.GenerateContent(ctx, message)
	if err != nil {
		return "", fmt.Errorf("assistant backend error: %w", err)
	}
	return reply, nil
}

func (s *DefaultAssistantService) emergencyReply() string {
	return fmt.Sprintf(
		"I am concerned about your safety. Please reach out to the campus crisis line immediately at %s. You are not alone.",
		s.CrisisLine,
	)
}

func isEmergency(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
