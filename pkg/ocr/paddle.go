package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"shaban/pkg/plate"
)

// PaddleEngine talks to a PaddleOCR sidecar over HTTP. PaddleOCR has no Go
// binding, so the model runs in its own process; the sidecar accepts
// {"image": "<base64 png>"} and answers {"lines": [{"text": ...,
// "confidence": ..}]} with confidence already in [0,1].
type PaddleEngine struct {
	url    string
	client *http.Client
}

func NewPaddle(url string) *PaddleEngine {
	return &PaddleEngine{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *PaddleEngine) Name() string { return "PaddleOCR" }

func (e *PaddleEngine) Confidence() int { return 95 }

func (e *PaddleEngine) Recognize(ctx context.Context, img image.Image) ([]plate.Line, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, PreprocessPlate(img), imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	payload, err := json.Marshal(map[string]string{
		"image": base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paddle sidecar: %w: %v", ErrEngineUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paddle sidecar: %w: status %d", ErrEngineUnavailable, resp.StatusCode)
	}
	var out struct {
		Lines []struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"lines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("paddle sidecar: decode response: %w", err)
	}
	lines := make([]plate.Line, 0, len(out.Lines))
	for _, ln := range out.Lines {
		lines = append(lines, plate.Line{Text: ln.Text, Confidence: ln.Confidence})
	}
	return lines, nil
}

func (e *PaddleEngine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}
