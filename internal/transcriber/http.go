package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type recognizeRequest struct {
	Audio  audioSource      `json:"audio"`
	Config recognizerConfig `json:"config"`
}

type audioSource struct {
	URI string `json:"uri"`
}

type recognizerConfig struct {
	Encoding                   string `json:"encoding"`
	SampleRateHertz            int    `json:"sampleRateHertz"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
}

type operation struct {
	Name     string           `json:"name"`
	Done     bool             `json:"done"`
	Response *recognizeResult `json:"response,omitempty"`
	Error    *operationError  `json:"error,omitempty"`
}

type recognizeResult struct {
	Results []speechResult `json:"results"`
}

type speechResult struct {
	Alternatives []alternative `json:"alternatives"`
}

type alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

type operationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Transcribe submits a long-running recognition job for audioURI and waits
// for completion, polling the returned operation.
func (t *implTranscriber) Transcribe(ctx context.Context, audioURI string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	op, err := t.submit(ctx, audioURI)
	if err != nil {
		return "", fmt.Errorf("submit recognition job: %w", err)
	}

	t.logger.Info(ctx, "Recognition job submitted: %s", op.Name)

	final, err := t.waitForCompletion(ctx, op)
	if err != nil {
		return "", err
	}

	return assembleTranscript(final.Response), nil
}

func (t *implTranscriber) submit(ctx context.Context, audioURI string) (*operation, error) {
	reqBody := recognizeRequest{
		Audio: audioSource{URI: audioURI},
		Config: recognizerConfig{
			Encoding:                   encoding,
			SampleRateHertz:            sampleRateHertz,
			LanguageCode:               t.language,
			EnableAutomaticPunctuation: true,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var op operation
	url := t.baseURL + "/v1/speech:longrunningrecognize"
	if err := t.doJSON(ctx, http.MethodPost, url, payload, &op); err != nil {
		return nil, err
	}
	if op.Name == "" && !op.Done {
		return nil, fmt.Errorf("service returned no operation name")
	}
	return &op, nil
}

// waitForCompletion polls the operation until done. Poll failures are
// tolerated and retried on the next tick; the context deadline is the
// only hard stop.
func (t *implTranscriber) waitForCompletion(ctx context.Context, op *operation) (*operation, error) {
	if op.Done {
		return finishedOperation(op)
	}

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	url := t.baseURL + "/v1/operations/" + op.Name

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("recognition wait: %w", ctx.Err())
		case <-ticker.C:
			var current operation
			if err := t.doJSON(ctx, http.MethodGet, url, nil, &current); err != nil {
				t.logger.Warn(ctx, "Poll failed for %s: %v", op.Name, err)
				continue
			}
			if !current.Done {
				t.logger.Debug(ctx, "Operation %s still running", op.Name)
				continue
			}
			return finishedOperation(&current)
		}
	}
}

// finishedOperation surfaces the error of a completed operation. A job can
// finish failed on the submit response itself, before any poll.
func finishedOperation(op *operation) (*operation, error) {
	if op.Error != nil {
		return nil, fmt.Errorf("recognition failed: %s", op.Error.Message)
	}
	return op, nil
}

// doJSON performs one HTTP exchange with exponential backoff on network
// errors and 5xx responses. 4xx responses are permanent.
func (t *implTranscriber) doJSON(ctx context.Context, method, url string, body []byte, target interface{}) error {
	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	op := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := t.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("request rejected %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
		}

		if err := json.Unmarshal(data, target); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	return backoff.Retry(op, bo)
}

// assembleTranscript joins the first alternative of each result with single
// spaces, in service order. No further normalization is applied.
func assembleTranscript(resp *recognizeResult) string {
	if resp == nil {
		return ""
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, result.Alternatives[0].Transcript)
	}
	return strings.Join(parts, " ")
}
