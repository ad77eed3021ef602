package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// ArkGenerator completes prompts through an eino chain over a Volcengine Ark
// chat model, for deployments that cannot reach the Gemini API.
type ArkGenerator struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewArkGenerator compiles a single-turn chain around chatModel.
func NewArkGenerator(ctx context.Context, chatModel model.ChatModel) (*ArkGenerator, error) {
	template := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(template)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}
	return &ArkGenerator{chain: runnable}, nil
}

// Generate invokes the chain once and returns the model's message content.
func (g *ArkGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	response, err := g.chain.Invoke(ctx, map[string]any{"prompt": promptText})
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	return response.Content, nil
}
