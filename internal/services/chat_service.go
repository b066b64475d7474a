package services

import (
	"context"
	"strings"

	"github.com/infoaidtech/backend/internal/providers/llm"
	"github.com/infoaidtech/backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type ChatResult struct {
	Response string
	Fallback bool
}

type ChatStatus struct {
	Status string // "operational" or "fallback-mode"
}

type ChatService interface {
	// Respond never surfaces provider failures: it degrades to a canned
	// keyword-matched reply instead.
	Respond(ctx context.Context, message, conversationHistory, systemPrompt string) (*ChatResult, error)
	Health(ctx context.Context) *ChatStatus
}

type chatService struct {
	provider llm.Provider
	log      *logrus.Logger
}

func NewChatService(provider llm.Provider, log *logrus.Logger) ChatService {
	return &chatService{provider: provider, log: log}
}

func (s *chatService) Respond(ctx context.Context, message, conversationHistory, systemPrompt string) (*ChatResult, error) {
	const op = "ChatService.Respond"

	if strings.TrimSpace(message) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}

	// No provider configured: the canned replies are the whole service.
	if s.provider == nil {
		return &ChatResult{Response: fallbackResponse(message), Fallback: true}, nil
	}

	history := ParseHistory(conversationHistory)

	raw, err := s.provider.Chat(ctx, systemPrompt, history, message)
	if err != nil {
		s.log.WithError(err).Warn("chat provider failed, using fallback")
		return &ChatResult{Response: fallbackResponse(message), Fallback: true}, nil
	}

	cleaned := cleanResponse(raw)
	if cleaned == "" {
		return &ChatResult{Response: fallbackResponse(message), Fallback: true}, nil
	}
	return &ChatResult{Response: cleaned}, nil
}

func (s *chatService) Health(ctx context.Context) *ChatStatus {
	if s.provider == nil {
		return &ChatStatus{Status: "fallback-mode"}
	}
	if err := s.provider.Probe(ctx); err != nil {
		s.log.WithError(err).Warn("chat provider probe failed")
		return &ChatStatus{Status: "fallback-mode"}
	}
	return &ChatStatus{Status: "operational"}
}

// ParseHistory turns a newline-delimited "User:"/"Assistant:" transcript
// into a strictly alternating turn sequence starting with a user turn.
// Lines that break the pattern are dropped, not rejected.
func ParseHistory(transcript string) []llm.Turn {
	var turns []llm.Turn
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "User:"):
			turns = append(turns, llm.Turn{
				Role: llm.RoleUser,
				Text: strings.TrimSpace(strings.TrimPrefix(line, "User:")),
			})
		case strings.HasPrefix(line, "Assistant:"):
			turns = append(turns, llm.Turn{
				Role: llm.RoleAssistant,
				Text: strings.TrimSpace(strings.TrimPrefix(line, "Assistant:")),
			})
		}
	}

	validated := turns[:0]
	expect := llm.RoleUser
	for _, t := range turns {
		if t.Role != expect {
			continue
		}
		validated = append(validated, t)
		if expect == llm.RoleUser {
			expect = llm.RoleAssistant
		} else {
			expect = llm.RoleUser
		}
	}
	return validated
}

// cleanResponse strips speaker prefixes and markdown bold, caps the reply at
// 500 characters, and cuts back to the last sentence end when that end lies
// past character 300.
func cleanResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, prefix := range []string{"Assistant:", "Bot:", "AI:"} {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, prefix))
			break
		}
	}
	cleaned = strings.ReplaceAll(cleaned, "**", "")

	// Cap on runes, not bytes, so a multibyte character is never split.
	if runes := []rune(cleaned); len(runes) > 500 {
		runes = runes[:500]
		lastSentence := -1
		for i, r := range runes {
			switch r {
			case '.', '?', '!':
				lastSentence = i
			}
		}
		if lastSentence > 300 {
			runes = runes[:lastSentence+1]
		}
		cleaned = strings.TrimSpace(string(runes))
	}
	return cleaned
}

// fallbackRule pairs a predicate with its canned reply. Rules are evaluated
// top to bottom, first match wins.
type fallbackRule struct {
	match    func(string) bool
	response string
}

func anyOf(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, sub := range subs {
			if strings.Contains(msg, sub) {
				return true
			}
		}
		return false
	}
}

var fallbackRules = []fallbackRule{
	{anyOf("job", "career", "opportunity"),
		"🚀 Explore exciting tech career opportunities on InfoAidTech! We feature roles in:\n• Web Development (React, Node.js)\n• Mobile Development (iOS, Android)\n• DevOps & Cloud\n• AI/ML Engineering\n\nVisit our careers page to apply!"},
	{anyOf("tutorial", "learn", "how to", "teach"),
		"📚 Our comprehensive tutorials cover:\n• JavaScript & TypeScript\n• React & Next.js\n• Python & Django\n• Node.js & Express\n• Mobile App Development\n\nCheck out our blog for step-by-step guides!"},
	{anyOf("blog", "article", "post", "read"),
		"✍️ InfoAidTech Blog features:\n• Latest tech trends & insights\n• Programming tutorials\n• Career development tips\n• Industry best practices\n\nBrowse our latest articles now!"},
	{anyOf("hi", "hello", "hey", "greet"),
		"👋 Hi! I'm Haptic, your InfoAidTech guide!\n\nI can help you with:\n🔧 Tech Tutorials & Guides\n💼 Career Opportunities\n📚 Learning Resources\n🔍 Site Navigation\n\nWhat tech topic interests you today?"},
	{anyOf("help", "what can you", "what do you"),
		"I specialize in InfoAidTech's services! I can assist with:\n\n✅ Programming tutorials (Web, Mobile, AI/ML)\n✅ Tech job listings and career advice\n✅ Learning resources and best practices\n✅ Navigating our blog and services\n\nWhat would you like to know more about?"},
	{anyOf("contact", "reach", "email"),
		"📧 Connect with InfoAidTech:\n• Follow us on LinkedIn, Twitter, GitHub\n• Visit our website for contact details\n• Check our blog for the latest updates\n\nHow else can I help you today?"},
}

const fallbackDefault = "I'm here to help with InfoAidTech's technology services! 😊\n\nPopular topics:\n• Programming tutorials\n• Tech career opportunities\n• Latest blog articles\n• Learning resources\n\nWhat interests you?"

func fallbackResponse(userMessage string) string {
	msg := strings.ToLower(userMessage)
	for _, rule := range fallbackRules {
		if rule.match(msg) {
			return rule.response
		}
	}
	return fallbackDefault
}
