package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// getAllPrompts returns the list of prompt definitions (name, description, arguments).
func getAllPrompts() []Prompt {
	return []Prompt{
		{
			Name:        "daily_briefing",
			Description: "Summarize today's AWS announcements and blog posts.",
			Arguments: []PromptArgument{
				{Name: "post_type", Description: "News, Blog, or Both (default Both)", Required: false, Type: "string"},
			},
		},
		{
			Name:        "category_digest",
			Description: "Digest of recent articles in one category.",
			Arguments: []PromptArgument{
				{Name: "category", Description: "Category name (use get_categories for the full list)", Required: true, Type: "string"},
				{Name: "days_back", Description: "How many days to cover (default 30)", Required: false, Type: "number"},
			},
		},
		{
			Name:        "research_topic",
			Description: "Search the feed for a topic and read the most relevant articles in full.",
			Arguments: []PromptArgument{
				{Name: "query", Description: "Topic to research (e.g. \"lambda\", \"bedrock\")", Required: true, Type: "string"},
			},
		},
	}
}

// getPromptByName returns the prompt messages for the given name with
// arguments substituted. A missing required argument yields an error
// suitable for -32602 (Invalid params).
func getPromptByName(name string, arguments map[string]any) ([]PromptMessage, error) {
	prompts := getAllPrompts()
	var def *Prompt
	for i := range prompts {
		if prompts[i].Name == name {
			def = &prompts[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}

	var missing []string
	for _, arg := range def.Arguments {
		if !arg.Required {
			continue
		}
		v, ok := arguments[arg.Name]
		if !ok || v == nil {
			missing = append(missing, arg.Name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	return buildPromptMessages(def.Name, arguments), nil
}

func buildPromptMessages(name string, args map[string]any) []PromptMessage {
	var text string

	switch name {
	case "daily_briefing":
		postType, _ := args["post_type"].(string)
		if postType == "" {
			postType = "Both"
		}
		text = fmt.Sprintf(
			"Use get_todays_posts with post_type %q. Group the results by category and "+
				"write a short briefing: one line per article, new service launches first.",
			postType,
		)
	case "category_digest":
		category, _ := args["category"].(string)
		text = fmt.Sprintf(
			"Use get_posts_by_category with category %q (pass days_back if provided). "+
				"Summarize the common themes and call out anything marked popular.",
			category,
		)
	case "research_topic":
		query, _ := args["query"].(string)
		text = fmt.Sprintf(
			"Use search_posts with query %q, pick the two or three most relevant results, "+
				"fetch each with get_article_content, and synthesize what changed and why it matters.",
			query,
		)
	}

	return []PromptMessage{{
		Role:    "user",
		Content: []PromptContent{{Type: "text", Text: text}},
	}}
}

// promptsGetParams for prompts/get.
type promptsGetParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// parsePromptsGetParams parses params for prompts/get. Returns name, arguments, and error message if invalid.
func parsePromptsGetParams(params json.RawMessage) (name string, arguments map[string]any, errMsg string) {
	var p promptsGetParams
	if unmarshalErr := json.Unmarshal(params, &p); unmarshalErr != nil {
		return "", nil, "Invalid parameters: " + unmarshalErr.Error()
	}
	if p.Name == "" {
		return "", nil, "name is required"
	}
	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}
	return p.Name, p.Arguments, ""
}
