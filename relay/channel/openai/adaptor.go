package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"profileinator/common/config"
	img "profileinator/common/image"
)

const describeInstruction = "Describe the person or subject in this photo for an artist brief: " +
	"appearance, hair, expression, clothing, framing, lighting and background. " +
	"Be concrete and keep it under 120 words."

// Adaptor shapes requests against the OpenAI REST API and decodes the
// responses. It holds no state beyond its configuration and a shared
// HTTP client with a bounded timeout.
type Adaptor struct {
	APIKey        string
	BaseURL       string
	DescribeModel string
	ImageModel    string
	ImageSize     string
	Client        *http.Client
}

func NewAdaptor() *Adaptor {
	client := &http.Client{}
	if config.RelayTimeout > 0 {
		client.Timeout = time.Duration(config.RelayTimeout) * time.Second
	}
	return &Adaptor{
		APIKey:        config.OpenAIAPIKey,
		BaseURL:       config.OpenAIBaseURL,
		DescribeModel: config.DescribeModel,
		ImageModel:    config.ImageModel,
		ImageSize:     config.ImageSize,
		Client:        client,
	}
}

// Describe sends the uploaded image to the vision model and returns its
// textual description.
func (a *Adaptor) Describe(ctx context.Context, image []byte, mediaType string) (string, error) {
	request := ChatRequest{
		Model: a.DescribeModel,
		Messages: []Message{
			{
				Role: "user",
				Content: []any{
					TextContent{Type: "text", Text: describeInstruction},
					ImageContent{Type: "image_url", ImageURL: &ImageURL{Url: img.DataURL(image, mediaType)}},
				},
			},
		},
	}
	var response ChatResponse
	if err := a.postJSON(ctx, "/v1/chat/completions", &request, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", &ProviderError{Message: "empty description from vision model"}
	}
	return response.Choices[0].Message.Content, nil
}

// Generate requests n images for the prompt. The provider may return
// fewer than n; that is the caller's problem to surface, not ours to
// retry. Zero usable images is treated as a failure.
func (a *Adaptor) Generate(ctx context.Context, prompt string, n int) ([][]byte, error) {
	request := ImageRequest{
		Model:          a.ImageModel,
		Prompt:         prompt,
		N:              n,
		Size:           a.ImageSize,
		ResponseFormat: "b64_json",
	}
	var response ImageResponse
	if err := a.postJSON(ctx, "/v1/images/generations", &request, &response); err != nil {
		return nil, err
	}
	images := make([][]byte, 0, len(response.Data))
	for i, item := range response.Data {
		if item.B64Json == "" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(item.B64Json)
		if err != nil {
			return nil, &ProviderError{Message: fmt.Sprintf("invalid base64 in image %d", i), Err: err}
		}
		images = append(images, decoded)
	}
	if len(images) == 0 {
		return nil, &ProviderError{Message: "no image generated"}
	}
	return images, nil
}

func (a *Adaptor) postJSON(ctx context.Context, path string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &ProviderError{Message: "marshal request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &ProviderError{Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.APIKey)

	resp, err := a.Client.Do(req)
	if err != nil {
		return &ProviderError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Message: "read response body", Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &ProviderError{StatusCode: resp.StatusCode, Message: upstreamErrorMessage(body)}
	}
	if err = json.Unmarshal(body, out); err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	return nil
}

// upstreamErrorMessage pulls the provider's own message out of an error
// body when there is one.
func upstreamErrorMessage(body []byte) string {
	var wrapped struct {
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error != nil && wrapped.Error.Message != "" {
		return wrapped.Error.Message
	}
	if len(body) > 256 {
		body = body[:256]
	}
	return string(body)
}
