package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/cert-lab/ccna-prep/internal/gemini"
)

var ErrUnknownTopic = errors.New("study: unknown topic")

type Service struct {
	svc   gemini.Service
	store GuideStore
}

func NewService(svc gemini.Service, store GuideStore) *Service {
	return &Service{svc: svc, store: store}
}

// Guide returns the study guide for a topic, generating and caching it on
// first access. A cache write failure does not lose the guide.
func (s *Service) Guide(ctx context.Context, topicID string) (string, error) {
	t, ok := TopicByID(topicID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTopic, topicID)
	}
	if md, err := s.store.Get(ctx, topicID); err == nil && md != "" {
		return md, nil
	}
	md, err := s.svc.GenerateMarkdown(ctx, guidePrompt(t))
	if err != nil {
		return "", err
	}
	_ = s.store.Put(ctx, topicID, md)
	return md, nil
}

func guidePrompt(t Topic) string {
	return fmt.Sprintf(`You are an expert CCNA instructor (Cisco Certified Network Associate).
Provide a comprehensive but concise study guide for the topic: %q (exam domain: %s).

Structure:
1. Key Concepts (bullet points)
2. Configuration Syntax (if applicable, use code blocks)
3. Important Exam Notes (common pitfalls)
4. A real-world analogy.

Output in Markdown format.`, t.Title, t.Domain)
}
