package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// Client is the production Service backed by the Gemini API.
type Client struct {
	c     *genai.Client
	model string
}

// New fails fast when apiKey is empty so a missing credential surfaces before
// any session can start, not in the middle of one.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{c: c, model: model}, nil
}

func (c *Client) GenerateMarkdown(ctx context.Context, prompt string) (string, error) {
	resp, err := c.c.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

var questionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":            {Type: genai.TypeInteger},
			"domain":        {Type: genai.TypeString},
			"question":      {Type: genai.TypeString},
			"options":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"correctAnswer": {Type: genai.TypeInteger},
			"explanation":   {Type: genai.TypeString},
		},
		Required: []string{"question", "options", "correctAnswer", "explanation"},
	},
}

func (c *Client) GenerateQuestions(ctx context.Context, prompt string) ([]RawQuestion, error) {
	resp, err := c.c.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   questionSchema,
	})
	if err != nil {
		return nil, err
	}
	var out []RawQuestion
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode question JSON: %w", err)
	}
	return out, nil
}

func (c *Client) NewChat(ctx context.Context, systemInstruction string) (Chat, error) {
	ch, err := c.c.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: create chat: %w", err)
	}
	return &chat{c: ch}, nil
}

type chat struct{ c *genai.Chat }

func (ch *chat) Send(ctx context.Context, message string) (string, error) {
	resp, err := ch.c.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
