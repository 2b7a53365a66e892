package geoserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jharrell-gis/geoloader/internal/common"
)

// HTTPError is a non-success response from the GeoServer REST API.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("geoserver: %s %s returned %d", e.Method, e.URL, e.StatusCode)
}

// Client publishes datasets to, and removes datasets from, a GeoServer
// instance over its REST API.
type Client struct {
	baseURL   string
	workspace string
	username  string
	password  string
	hc        *http.Client
	log       *slog.Logger
}

func NewClient(cfg common.GeoServerConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		workspace: cfg.Workspace,
		username:  cfg.Username,
		password:  cfg.Password,
		hc:        &http.Client{Timeout: timeout},
		log:       logger,
	}
}

// DatastorePath is the fixed per-workspace destination for vector uploads.
func DatastorePath(workspace, ext string) string {
	return fmt.Sprintf("workspaces/%s/datastores/data/file.%s", workspace, ext)
}

// CoveragestorePath is the fixed per-workspace destination for raster uploads.
func CoveragestorePath(workspace, ext string) string {
	return fmt.Sprintf("workspaces/%s/coveragestores/data/file.%s", workspace, ext)
}

// Publish PUTs the payload to the given resource path under the REST root.
// Non-2xx responses come back as *HTTPError.
func (c *Client) Publish(ctx context.Context, resourcePath string, body io.Reader, contentType string) error {
	url := c.baseURL + "/" + resourcePath
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		c.log.Error("geoserver.http.build_request_error", "url", url, "error", err)
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-type", contentType)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.log.Info("geoserver.http.request", "method", http.MethodPut, "url", url, "content_type", contentType)
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("geoserver.http.send_error", "url", url, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return err
	}
	defer drainAndClose(resp.Body, c.log)

	c.log.Info("geoserver.http.response", "url", url, "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())
	if resp.StatusCode/100 != 2 {
		return &HTTPError{StatusCode: resp.StatusCode, Method: http.MethodPut, URL: url}
	}
	return nil
}

// DeleteFeatureType removes a published feature type and everything derived
// from it (recurse=true). Used as the compensating action after a failed index
// submission.
func (c *Client) DeleteFeatureType(ctx context.Context, name string) error {
	path := fmt.Sprintf("workspaces/%s/datastores/data/featuretypes/%s?recurse=true", c.workspace, name)
	return c.delete(ctx, path)
}

// DeleteCoverage is the coveragestore analog of DeleteFeatureType.
func (c *Client) DeleteCoverage(ctx context.Context, name string) error {
	path := fmt.Sprintf("workspaces/%s/coveragestores/data/coverages/%s?recurse=true", c.workspace, name)
	return c.delete(ctx, path)
}

func (c *Client) delete(ctx context.Context, resourcePath string) error {
	url := c.baseURL + "/" + resourcePath
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		c.log.Error("geoserver.http.build_request_error", "url", url, "error", err)
		return fmt.Errorf("build request: %w", err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.log.Info("geoserver.http.request", "method", http.MethodDelete, "url", url)
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("geoserver.http.send_error", "url", url, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return err
	}
	defer drainAndClose(resp.Body, c.log)

	c.log.Info("geoserver.http.response", "url", url, "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())
	if resp.StatusCode/100 != 2 {
		return &HTTPError{StatusCode: resp.StatusCode, Method: http.MethodDelete, URL: url}
	}
	return nil
}

func drainAndClose(body io.ReadCloser, log *slog.Logger) {
	_, _ = io.Copy(io.Discard, body)
	if err := body.Close(); err != nil {
		log.Warn("geoserver.http.response_body_close_error", "error", err)
	}
}
