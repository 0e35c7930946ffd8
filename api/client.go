// Package api is the HTTP client for the remote PDF sign service. It posts
// the original document plus the serialized overlay elements as a multipart
// form and interprets the response, including partial OCR failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/Caqil/scanpro-annotate/model"
)

// SignPath is the sign endpoint, relative to the client's base URL.
const SignPath = "/api/pdf/sign"

// Client talks to one sign service instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. The token, when
// non-empty, is sent as a bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Sign uploads the document and its annotation elements and returns the
// service's result. The returned error is non-nil for transport failures,
// non-2xx statuses and results with success=false; a successful result with
// a failed OCR step returns a nil error and a non-empty result.Warning().
func (c *Client) Sign(ctx context.Context, filename string, file io.Reader, elements []model.Element, pages []model.PageMetadata, opts SignOptions) (*SignResult, error) {
	body := new(bytes.Buffer)
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	elementsJSON, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode elements: %w", err)
	}
	pagesJSON, err := json.Marshal(pages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pages: %w", err)
	}

	if err := form.WriteField("elements", string(elementsJSON)); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if err := form.WriteField("pages", string(pagesJSON)); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if err := form.WriteField("performOcr", strconv.FormatBool(opts.PerformOCR)); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if opts.OCRLanguage != "" {
		if err := form.WriteField("ocrLanguage", opts.OCRLanguage); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SignPath, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: Status %d, Response: %s", res.StatusCode, string(resBody))
	}

	result := new(SignResult)
	if err := json.Unmarshal(resBody, result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "unknown error"
		}
		return result, fmt.Errorf("sign failed: %s", msg)
	}
	return result, nil
}
