// Package generation streams activity records from an OpenAI-compatible chat model.
package generation

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"strings"

	"wander/config"
	"wander/internal/domain/entity"
	"wander/internal/domain/service"
	"wander/internal/errors"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
)

// Params defines the parameters required for the generator
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type openAIGenerator struct {
	client *openai.Client
	cfg    config.GenerationConfig
	logger *slog.Logger
}

// New creates the streaming activity generator
func New(params Params) service.ActivityGenerator {
	var cfg config.GenerationConfig
	if params.Config.Generation != nil {
		cfg = *params.Config.Generation
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		logger: params.Logger.With(slog.String("component", "generator"), slog.String("model", cfg.Model)),
	}
}

// Availability checks the configuration; it never calls the API.
func (g *openAIGenerator) Availability(_ context.Context) entity.Availability {
	switch {
	case !g.cfg.Enabled || g.cfg.APIKey == "":
		return entity.Availability{Status: entity.AvailabilityFeatureDisabled}
	case g.cfg.Model == "":
		return entity.Availability{Status: entity.AvailabilityUnavailableOther, Detail: "no model configured"}
	default:
		return entity.Availability{Status: entity.AvailabilityAvailable}
	}
}

// StreamActivities yields a snapshot each time the streamed JSON grows a
// new complete member.
func (g *openAIGenerator) StreamActivities(ctx context.Context, req entity.GenerationRequest) iter.Seq2[[]entity.PartialActivity, error] {
	return func(yield func([]entity.PartialActivity, error) bool) {
		stream, err := g.client.CreateChatCompletionStream(ctx, g.chatRequest(req))
		if err != nil {
			yield(nil, g.streamError(ctx, err))

			return
		}
		defer stream.Close()

		var (
			text       strings.Builder
			lastClosed string
		)
		for {
			response, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, g.streamError(ctx, err))

				return
			}
			if len(response.Choices) == 0 {
				continue
			}

			choice := response.Choices[0]
			if choice.Delta.Content != "" {
				text.WriteString(choice.Delta.Content)

				closed, ok := closePartialJSON(text.String())
				if ok && closed != lastClosed {
					lastClosed = closed
					snapshot, err := decodeSnapshot(closed)
					if err != nil {
						g.logger.DebugContext(ctx, "Skipping undecodable snapshot", slog.Any("error", err))
					} else if !yield(snapshot, nil) {
						return
					}
				}
			}

			if genErr := finishReasonError(choice.FinishReason); genErr != nil {
				yield(nil, genErr)

				return
			}
		}
	}
}

func (g *openAIGenerator) chatRequest(req entity.GenerationRequest) openai.ChatCompletionRequest {
	system := req.Instructions
	if req.Schema != "" {
		system += "\n\nJSON schema:\n" + req.Schema
	}

	return openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: g.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
}

// streamError passes cancellation through untouched and classifies the rest.
func (g *openAIGenerator) streamError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	genErr := classifyError(err)
	g.logger.WarnContext(ctx, "Generation stream failed",
		slog.String("kind", string(genErr.Kind)),
		slog.Any("error", err),
	)

	return genErr
}
