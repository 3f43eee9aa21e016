package pipeline

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"profileinator/common/logger"
)

// Provider is the capability the pipeline needs from the AI backend.
// Tests substitute a fake; production wires the OpenAI adaptor.
type Provider interface {
	Describe(ctx context.Context, image []byte, mediaType string) (string, error)
	Generate(ctx context.Context, prompt string, n int) ([][]byte, error)
}

// promptTemplate turns a photo description into a generation prompt.
// The %s is the vision model's description of the upload.
const promptTemplate = "Create a polished, professional profile picture based on this description: %s. " +
	"Head-and-shoulders framing, flattering studio lighting, clean background, sharp focus."

// Result is one finished describe-then-generate run. Images preserve
// provider order. Warning is set when fewer images came back than asked.
type Result struct {
	Images  [][]byte
	Warning string
}

type Pipeline struct {
	provider Provider
}

func New(provider Provider) *Pipeline {
	return &Pipeline{provider: provider}
}

// Run executes the two provider calls in order: describe the upload,
// then generate n variants from the interpolated prompt. Any stage
// failure aborts the whole run; nothing is retried.
func (p *Pipeline) Run(ctx context.Context, image []byte, mediaType string, n int) (*Result, error) {
	description, err := p.provider.Describe(ctx, image, mediaType)
	if err != nil {
		return nil, errors.Wrap(err, "describe upload")
	}
	logger.Debugf(ctx, "vision description: %s", description)

	prompt := fmt.Sprintf(promptTemplate, description)
	images, err := p.provider.Generate(ctx, prompt, n)
	if err != nil {
		return nil, errors.Wrap(err, "generate variants")
	}

	result := &Result{Images: images}
	if len(images) < n {
		result.Warning = fmt.Sprintf("provider returned %d of %d requested variants", len(images), n)
		logger.Warn(ctx, result.Warning)
	}
	return result, nil
}
