package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/scanpro-annotate/api"
	"github.com/Caqil/scanpro-annotate/config"
	"github.com/Caqil/scanpro-annotate/document"
	"github.com/Caqil/scanpro-annotate/internal/testpdf"
	"github.com/Caqil/scanpro-annotate/model"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	cfg := config.Default()
	cfg.OutputDir = t.TempDir()

	server, err := NewApiServer(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(server.routes())
	t.Cleanup(ts.Close)
	return ts, cfg.OutputDir
}

func TestServerSignFlattensDocument(t *testing.T) {
	ts, outputDir := newTestServer(t)

	pdf := testpdf.Single(600, 800)

	elements := []model.Element{
		{
			ID:       "text-x-1",
			Kind:     model.Text,
			Position: model.Position{X: 100, Y: 100},
			Size:     model.Size{Width: 200, Height: 50},
			Payload:  "Alex Smith",
		},
	}
	pages := []model.PageMetadata{
		{Width: 600, Height: 800, OriginalWidth: 600, OriginalHeight: 800},
	}

	client := api.NewClient(ts.URL, "")
	result, err := client.Sign(context.Background(), "contract.pdf", bytes.NewReader(pdf), elements, pages, api.SignOptions{})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/files/contract-signed.pdf", result.FileURL)
	assert.Equal(t, "contract.pdf", result.OriginalName)
	assert.Empty(t, result.Warning())

	output, err := os.Open(filepath.Join(outputDir, "contract-signed.pdf"))
	require.NoError(t, err)
	defer output.Close()

	doc, err := document.Read(output)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount())
}

func TestServerSignReportsOCRUnavailable(t *testing.T) {
	ts, _ := newTestServer(t)

	pdf := testpdf.Single(600, 800)

	client := api.NewClient(ts.URL, "")
	result, err := client.Sign(context.Background(), "doc.pdf", bytes.NewReader(pdf), nil, nil,
		api.SignOptions{PerformOCR: true, OCRLanguage: "eng"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.OCRComplete)
	assert.NotEmpty(t, result.Warning())
}

func TestServerSignRejectsGarbage(t *testing.T) {
	ts, _ := newTestServer(t)

	client := api.NewClient(ts.URL, "")
	result, err := client.Sign(context.Background(), "junk.pdf", bytes.NewReader([]byte("not a pdf")), nil, nil, api.SignOptions{})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestServerHealthAndVersion(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, 200, res.StatusCode)

	res, err = ts.Client().Get(ts.URL + "/api/version")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, 200, res.StatusCode)
}
