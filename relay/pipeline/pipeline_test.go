package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeProvider struct {
	description   string
	describeErr   error
	images        [][]byte
	generateErr   error
	describeCalls int
	generateCalls int
	lastPrompt    string
	lastN         int
}

func (f *fakeProvider) Describe(_ context.Context, _ []byte, _ string) (string, error) {
	f.describeCalls++
	if f.describeErr != nil {
		return "", f.describeErr
	}
	return f.description, nil
}

func (f *fakeProvider) Generate(_ context.Context, prompt string, n int) ([][]byte, error) {
	f.generateCalls++
	f.lastPrompt = prompt
	f.lastN = n
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.images, nil
}

func TestRun(t *testing.T) {
	provider := &fakeProvider{
		description: "a smiling person in a blue shirt",
		images:      [][]byte{[]byte("img1"), []byte("img2"), []byte("img3")},
	}
	result, err := New(provider).Run(context.Background(), []byte("photo"), "image/jpeg", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Images) != 3 {
		t.Fatalf("images = %d, want 3", len(result.Images))
	}
	for i, image := range result.Images {
		if len(image) == 0 {
			t.Errorf("image %d is empty", i)
		}
	}
	if result.Warning != "" {
		t.Errorf("warning = %q, want empty", result.Warning)
	}
	if provider.lastN != 3 {
		t.Errorf("generate n = %d, want 3", provider.lastN)
	}
	if !strings.Contains(provider.lastPrompt, provider.description) {
		t.Errorf("prompt %q does not contain the description", provider.lastPrompt)
	}
}

func TestRunDescribeFailureSkipsGenerate(t *testing.T) {
	cause := errors.New("vision model unavailable")
	provider := &fakeProvider{describeErr: cause}
	_, err := New(provider).Run(context.Background(), []byte("photo"), "image/png", 2)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain does not carry the cause: %v", err)
	}
	if provider.generateCalls != 0 {
		t.Errorf("generate called %d times after describe failed, want 0", provider.generateCalls)
	}
}

func TestRunGenerateFailure(t *testing.T) {
	cause := errors.New("image model overloaded")
	provider := &fakeProvider{description: "desc", generateErr: cause}
	_, err := New(provider).Run(context.Background(), []byte("photo"), "image/png", 2)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain does not carry the cause: %v", err)
	}
	if provider.describeCalls != 1 {
		t.Errorf("describe called %d times, want 1", provider.describeCalls)
	}
}

func TestRunPartialResultSetsWarning(t *testing.T) {
	provider := &fakeProvider{
		description: "desc",
		images:      [][]byte{[]byte("img1"), []byte("img2")},
	}
	result, err := New(provider).Run(context.Background(), []byte("photo"), "image/png", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(result.Images))
	}
	if result.Warning == "" {
		t.Error("expected a warning for a partial result")
	}
}
