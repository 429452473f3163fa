package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrUnavailable is returned when the client was not configured at startup
var ErrUnavailable = errors.New("gemini client is not available")

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateAbout produces three candidate "about" texts for a dating profile
func (c *Client) GenerateAbout(ctx context.Context, firstname string, hobbies []string, city string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 short "about me" texts for a dating profile.
		Name: %s
		City: %s
		Hobbies: %v

		Task: Write 3 distinct self-descriptions (2-3 sentences each), warm
		and concrete, first person, mentioning the hobbies naturally.
		Language: Russian.
		Output: JSON array of strings. Example: ["...", "...", "..."]
	`, firstname, city, hobbies)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var suggestions []string
	if err := json.Unmarshal([]byte(responseText), &suggestions); err != nil {
		// Fallback: take non-empty lines from the raw text
		for _, line := range strings.Split(responseText, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				suggestions = append(suggestions, line)
			}
		}
		if len(suggestions) == 0 {
			return nil, fmt.Errorf("failed to parse suggestions: %w", err)
		}
	}

	return suggestions, nil
}
