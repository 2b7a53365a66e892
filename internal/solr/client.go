package solr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/records"
)

// HTTPError is a non-success response from the Solr update endpoint.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("solr: POST %s returned %d", e.URL, e.StatusCode)
}

// Client submits metadata records to a Solr core.
type Client struct {
	baseURL string
	hc      *http.Client
	log     *slog.Logger
}

func NewClient(cfg common.SolrConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// Add validates each record and submits the batch to the index. Validation
// failures abort the call before any network I/O; non-2xx responses come back
// as *HTTPError.
func (c *Client) Add(ctx context.Context, docs []records.GeoRecord) error {
	for _, doc := range docs {
		if err := records.Validate(doc); err != nil {
			c.log.Error("solr.add.invalid_record", "layer_id", doc.LayerID, "error", err)
			return err
		}
	}

	url := c.baseURL + "/update?commit=true"
	start := time.Now()

	bs, err := json.Marshal(docs)
	if err != nil {
		c.log.Error("solr.http.encode_error", "error", err)
		return fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		c.log.Error("solr.http.build_request_error", "url", url, "error", err)
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("solr.http.request", "url", url, "docs", len(docs), "content_length", len(bs))
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("solr.http.send_error", "url", url, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("solr.http.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	c.log.Info("solr.http.response", "url", url, "status", resp.StatusCode, "bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())
	if resp.StatusCode/100 != 2 {
		return &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}
	return nil
}
