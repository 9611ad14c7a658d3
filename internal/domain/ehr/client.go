package ehr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/medscribe/medscribe/internal/platform/fhir"
)

// SubmissionResult is the structured outcome of one bundle submission.
// Transport failures are carried as data, never as a returned error.
type SubmissionResult struct {
	Success            bool
	StatusCode         int
	Response           json.RawMessage
	SubmittedBundle    *fhir.Bundle
	PatientFHIRID      string
	PractitionerFHIRID string
	EncounterFHIRID    string
	Error              string
}

// Client performs the two network-facing EHR operations: the metadata
// probe and the bundle submission. It owns a pair of pooled transports
// shared across calls; the per-request timeout and TLS policy come from
// each configuration.
type Client struct {
	verified *http.Transport
	insecure *http.Transport
}

type ClientOption func(*Client)

// WithTransports replaces the pooled transports, used by tests.
func WithTransports(verified, insecure *http.Transport) ClientOption {
	return func(c *Client) {
		c.verified = verified
		c.insecure = insecure
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		verified: &http.Transport{},
		insecure: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases pooled connections.
func (c *Client) Close() {
	c.verified.CloseIdleConnections()
	c.insecure.CloseIdleConnections()
}

func (c *Client) httpClient(cfg *Configuration) *http.Client {
	transport := c.verified
	if !cfg.VerifySSL {
		transport = c.insecure
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

// capabilityStatement is the slice of a FHIR CapabilityStatement the probe
// reads.
type capabilityStatement struct {
	FHIRVersion string `json:"fhirVersion"`
	Rest        []struct {
		Resource []struct {
			Type string `json:"type"`
		} `json:"resource"`
	} `json:"rest"`
}

// TestConnection probes {base_url}/metadata. Every failure mode resolves
// to a returned error-status result; a failed connectivity check is
// operational data, not an exceptional condition. ResponseTime stays nil
// on the timeout path, where no round trip completed.
func (c *Client) TestConnection(ctx context.Context, cfg *Configuration) *ConnectionTest {
	started := time.Now()
	result := &ConnectionTest{
		DoctorID:   cfg.DoctorID,
		Provider:   cfg.Provider,
		LastTested: started.UTC(),
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/metadata"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Status = StatusError
		result.Message = fmt.Sprintf("Connection error: %v", err)
		return result
	}
	req.Header.Set("Accept", "application/fhir+json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := c.httpClient(cfg).Do(req)
	if err != nil {
		result.Status = StatusError
		if isTimeout(err) {
			result.Message = fmt.Sprintf("Connection timeout after %d seconds", cfg.Timeout)
		} else {
			result.Message = fmt.Sprintf("Connection error: %v", err)
		}
		return result
	}
	defer resp.Body.Close()

	elapsed := time.Since(started).Seconds()
	result.ResponseTime = &elapsed

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Status = StatusError
		result.Message = fmt.Sprintf("Connection error: %v", err)
		return result
	}

	if resp.StatusCode != http.StatusOK {
		result.Status = StatusError
		result.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body))
		return result
	}

	var capability capabilityStatement
	if err := json.Unmarshal(body, &capability); err != nil {
		result.Status = StatusError
		result.Message = fmt.Sprintf("Connection error: %v", err)
		return result
	}

	result.Status = StatusConnected
	result.Message = "Connection successful"
	result.FHIRVersion = capability.FHIRVersion
	result.Capabilities = dedupeCapabilities(capability)
	return result
}

func dedupeCapabilities(capability capabilityStatement) []string {
	seen := make(map[string]bool)
	var types []string
	for _, rest := range capability.Rest {
		for _, res := range rest.Resource {
			if res.Type == "" || seen[res.Type] {
				continue
			}
			seen[res.Type] = true
			types = append(types, res.Type)
		}
	}
	return types
}

// Submit POSTs a transaction bundle to the configured base URL. Success
// means HTTP 200 or 201. The raw response is kept as JSON when the remote
// declares JSON content, otherwise the text is wrapped as a JSON string so
// the ledger can always store it.
func (c *Client) Submit(ctx context.Context, cfg *Configuration, bundle *fhir.Bundle) *SubmissionResult {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return &SubmissionResult{Success: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return &SubmissionResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/fhir+json")
	req.Header.Set("Accept", "application/fhir+json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := c.httpClient(cfg).Do(req)
	if err != nil {
		msg := err.Error()
		if isTimeout(err) {
			msg = fmt.Sprintf("submission timeout after %d seconds", cfg.Timeout)
		}
		return &SubmissionResult{Success: false, Error: msg}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SubmissionResult{Success: false, StatusCode: resp.StatusCode, Error: err.Error()}
	}

	result := &SubmissionResult{
		Success:         resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated,
		StatusCode:      resp.StatusCode,
		SubmittedBundle: bundle,
		Response:        normalizeResponseBody(resp.Header.Get("Content-Type"), body),
	}
	if !result.Success {
		result.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body))
	}
	return result
}

func normalizeResponseBody(contentType string, body []byte) json.RawMessage {
	if strings.Contains(contentType, "json") && json.Valid(body) {
		return json.RawMessage(body)
	}
	wrapped, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return json.RawMessage(wrapped)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
