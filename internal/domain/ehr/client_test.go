package ehr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medscribe/medscribe/internal/platform/fhir"
)

const metadataBody = `{
	"resourceType": "CapabilityStatement",
	"fhirVersion": "4.0.1",
	"rest": [{
		"resource": [
			{"type": "Patient"},
			{"type": "Observation"},
			{"type": "Patient"},
			{"type": "MedicationRequest"}
		]
	}]
}`

func testConfig(baseURL string) *Configuration {
	return &Configuration{
		Provider:  ProviderEpic,
		BaseURL:   baseURL,
		Timeout:   5,
		VerifySSL: true,
	}
}

func TestClient_TestConnection_Success(t *testing.T) {
	var gotPath, gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/fhir+json")
		w.Write([]byte(metadataBody))
	}))
	defer srv.Close()

	client := NewClient()
	defer client.Close()

	cfg := testConfig(srv.URL + "/fhir/")
	cfg.APIKey = "secret-key"
	test := client.TestConnection(context.Background(), cfg)

	if gotPath != "/fhir/metadata" {
		t.Errorf("request path = %q, want /fhir/metadata", gotPath)
	}
	if gotAccept != "application/fhir+json" {
		t.Errorf("accept header = %q", gotAccept)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if test.Status != StatusConnected {
		t.Fatalf("status = %q, message = %q", test.Status, test.Message)
	}
	if test.Message != "Connection successful" {
		t.Errorf("message = %q", test.Message)
	}
	if test.FHIRVersion != "4.0.1" {
		t.Errorf("fhir version = %q", test.FHIRVersion)
	}
	want := []string{"Patient", "Observation", "MedicationRequest"}
	if len(test.Capabilities) != len(want) {
		t.Fatalf("capabilities = %v, want %v", test.Capabilities, want)
	}
	for i := range want {
		if test.Capabilities[i] != want[i] {
			t.Errorf("capabilities[%d] = %q, want %q", i, test.Capabilities[i], want[i])
		}
	}
	if test.ResponseTime == nil {
		t.Error("response time not recorded")
	}
}

func TestClient_TestConnection_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient()
	defer client.Close()

	test := client.TestConnection(context.Background(), testConfig(srv.URL))

	if test.Status != StatusError {
		t.Fatalf("status = %q, want error", test.Status)
	}
	if !strings.HasPrefix(test.Message, "HTTP 500:") {
		t.Errorf("message = %q, want HTTP 500 prefix", test.Message)
	}
	if test.ResponseTime == nil {
		t.Error("response time should be recorded when a response arrived")
	}
}

func TestClient_TestConnection_Unreachable(t *testing.T) {
	client := NewClient()
	defer client.Close()

	test := client.TestConnection(context.Background(), testConfig("http://127.0.0.1:1"))

	if test.Status != StatusError {
		t.Fatalf("status = %q, want error", test.Status)
	}
	if !strings.HasPrefix(test.Message, "Connection error:") &&
		!strings.HasPrefix(test.Message, "Connection timeout") {
		t.Errorf("message = %q", test.Message)
	}
}

func TestClient_TestConnection_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not fhir</html>"))
	}))
	defer srv.Close()

	client := NewClient()
	defer client.Close()

	test := client.TestConnection(context.Background(), testConfig(srv.URL))
	if test.Status != StatusError {
		t.Errorf("status = %q, want error for non-JSON metadata", test.Status)
	}
}

func sampleBundle() *fhir.Bundle {
	b := NewBundleBuilder(WithClock(frozenClock()), WithIDGenerator(sequentialIDs()))
	return buildFullBundle(b)
}

func TestClient_Submit_Created(t *testing.T) {
	var gotContentType string
	var gotBundle fhir.Bundle
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBundle)
		w.Header().Set("Content-Type", "application/fhir+json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"resourceType":"Bundle","type":"transaction-response"}`))
	}))
	defer srv.Close()

	client := NewClient()
	defer client.Close()

	result := client.Submit(context.Background(), testConfig(srv.URL), sampleBundle())

	if !result.Success {
		t.Fatalf("expected success, error = %q", result.Error)
	}
	if result.StatusCode != http.StatusCreated {
		t.Errorf("status code = %d, want 201", result.StatusCode)
	}
	if gotContentType != "application/fhir+json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotBundle.Type != "transaction" {
		t.Errorf("received bundle type = %q, want transaction", gotBundle.Type)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(result.Response, &resp); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if resp["type"] != "transaction-response" {
		t.Errorf("response type = %v", resp["type"])
	}
}

func TestClient_Submit_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "OperationOutcome: invalid resource", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient()
	defer client.Close()

	result := client.Submit(context.Background(), testConfig(srv.URL), sampleBundle())

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.StatusCode != http.StatusBadRequest {
		t.Errorf("status code = %d, want 400", result.StatusCode)
	}
	if !strings.HasPrefix(result.Error, "HTTP 400:") {
		t.Errorf("error = %q", result.Error)
	}
}

func TestClient_Submit_NonJSONResponseWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := NewClient()
	defer client.Close()

	result := client.Submit(context.Background(), testConfig(srv.URL), sampleBundle())

	if !result.Success {
		t.Fatalf("expected success, error = %q", result.Error)
	}
	var text string
	if err := json.Unmarshal(result.Response, &text); err != nil {
		t.Fatalf("non-JSON body was not wrapped as a JSON string: %v", err)
	}
	if text != "OK" {
		t.Errorf("wrapped body = %q, want OK", text)
	}
}

func TestClient_Submit_Unreachable(t *testing.T) {
	client := NewClient()
	defer client.Close()

	result := client.Submit(context.Background(), testConfig("http://127.0.0.1:1"), sampleBundle())

	if result.Success {
		t.Fatal("expected failure for unreachable host")
	}
	if result.Error == "" {
		t.Error("expected transport error message")
	}
}
