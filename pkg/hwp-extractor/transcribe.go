package hwp_extractor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Transcriber turns embedded image or table bytes into recognized text.
// It is entirely decoupled from the core parse: a failure or timeout
// degrades to an empty contribution and never aborts section processing.
type Transcriber interface {
	Transcribe(ctx context.Context, image []byte) (string, error)
}

type transcribeRequest struct {
	Image string `json:"image"`
	Task  string `json:"task"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// HTTPTranscriber posts base64-encoded image bytes to a vision endpoint
// and reads back the recognized text.
type HTTPTranscriber struct {
	Endpoint string
	Client   *http.Client
	// Timeout bounds a single call (default 30s).
	Timeout time.Duration
}

func (t *HTTPTranscriber) Transcribe(ctx context.Context, image []byte) (string, error) {
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(transcribeRequest{
		Image: base64.StdEncoding.EncodeToString(image),
		Task:  "text_extraction",
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call transcriber: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcriber returned %s", resp.Status)
	}

	var out transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Text, nil
}

// transcribeAll runs each image through the transcriber, keeping the
// non-empty results and dropping failures.
func transcribeAll(ctx context.Context, logger *slog.Logger, tr Transcriber, images [][]byte) []string {
	if tr == nil || len(images) == 0 {
		return nil
	}
	var texts []string
	for _, img := range images {
		text, err := tr.Transcribe(ctx, img)
		if err != nil {
			logger.Debug("image transcription failed", "error", err)
			continue
		}
		if text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
