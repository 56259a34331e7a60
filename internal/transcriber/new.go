package transcriber

import (
	"net/http"
	"strings"
	"time"

	"github.com/quickrecap/recap-pipeline/internal/logger"
)

const (
	// Request configuration is pinned to the transcode target format.
	encoding        = "LINEAR16"
	sampleRateHertz = 44100
)

type implTranscriber struct {
	client       *http.Client
	baseURL      string
	language     string
	pollInterval time.Duration
	timeout      time.Duration
	logger       logger.Logger
}

// New creates a Transcriber talking to the speech service at baseURL.
// language selects the recognition locale (e.g. "en-US"); timeout bounds
// the whole operation including the completion wait.
func New(baseURL, language string, pollInterval, timeout time.Duration, log logger.Logger) Transcriber {
	return &implTranscriber{
		client:       &http.Client{Timeout: 30 * time.Second},
		baseURL:      strings.TrimRight(baseURL, "/"),
		language:     language,
		pollInterval: pollInterval,
		timeout:      timeout,
		logger:       log,
	}
}
