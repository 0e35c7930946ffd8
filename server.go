package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Caqil/scanpro-annotate/annotations"
	"github.com/Caqil/scanpro-annotate/api"
	"github.com/Caqil/scanpro-annotate/config"
	"github.com/Caqil/scanpro-annotate/document"
	"github.com/Caqil/scanpro-annotate/log"
	"github.com/Caqil/scanpro-annotate/model"
	"github.com/Caqil/scanpro-annotate/version"
)

const maxUploadBytes = 64 << 20

type ApiServer struct {
	cfg config.Config
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewApiServer(cfg config.Config) (*ApiServer, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %v", err)
	}
	return &ApiServer{cfg: cfg}, nil
}

func (s *ApiServer) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func (s *ApiServer) writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{Data: data})
}

func (s *ApiServer) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// signUpload is the parsed multipart payload of a sign request.
type signUpload struct {
	filename    string
	content     []byte
	elements    []model.Element
	pages       []model.PageMetadata
	performOCR  bool
	ocrLanguage string
}

func (s *ApiServer) parseSignUpload(r *http.Request) (*signUpload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("failed to parse form: %v", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("file field is required")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %v", err)
	}

	upload := &signUpload{
		filename:    filepath.Base(header.Filename),
		content:     content,
		performOCR:  r.FormValue("performOcr") == "true",
		ocrLanguage: r.FormValue("ocrLanguage"),
	}

	if raw := r.FormValue("elements"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &upload.elements); err != nil {
			return nil, fmt.Errorf("failed to parse elements: %v", err)
		}
	}
	if raw := r.FormValue("pages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &upload.pages); err != nil {
			return nil, fmt.Errorf("failed to parse pages: %v", err)
		}
	}

	return upload, nil
}

// POST /api/pdf/sign
func (s *ApiServer) handleSign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	upload, err := s.parseSignUpload(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	ext := filepath.Ext(upload.filename)
	name := strings.TrimSuffix(upload.filename, ext)
	if ext == "" {
		ext = ".pdf"
	}
	outputName := name + "-signed" + ext
	outputPath := filepath.Join(s.cfg.OutputDir, outputName)

	output, err := os.Create(outputPath)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to create output: %v", err))
		return
	}
	defer output.Close()

	err = annotations.Flatten(bytes.NewReader(upload.content), output, upload.elements, upload.pages, annotations.Options{})
	if err != nil {
		log.Warning.Printf("flatten failed for %s: %v", upload.filename, err)
		os.Remove(outputPath)
		s.writeJSON(w, api.SignResult{
			Success:      false,
			OriginalName: upload.filename,
			Error:        err.Error(),
		})
		return
	}

	result := api.SignResult{
		Success:      true,
		FileURL:      "/files/" + outputName,
		OriginalName: upload.filename,
	}
	// OCR is handled by the hosted service only.
	if upload.performOCR {
		result.OCRComplete = false
		result.OCRError = "OCR is not available in local server mode"
	}

	s.writeJSON(w, result)
}

// POST /api/pdf/info
func (s *ApiServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	upload, err := s.parseSignUpload(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	doc, err := document.Read(bytes.NewReader(upload.content))
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("failed to read document: %v", err))
		return
	}

	s.writeSuccess(w, map[string]interface{}{
		"filename": upload.filename,
		"pages":    doc.Pages(),
	})
}

// GET /api/version
func (s *ApiServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeSuccess(w, map[string]string{"version": version.Version})
}

func (s *ApiServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/pdf/sign", s.handleSign)
	mux.HandleFunc("/api/pdf/info", s.handleInfo)
	mux.HandleFunc("/api/version", s.handleVersion)

	mux.Handle("/files/", http.StripPrefix("/files/", http.FileServer(http.Dir(s.cfg.OutputDir))))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
	<title>megapdf sign API</title>
</head>
<body>
	<h1>megapdf sign API</h1>
	<h2>Endpoints:</h2>
	<ul>
		<li>POST /api/pdf/sign - Flatten elements into a document</li>
		<li>POST /api/pdf/info - Get document page metadata</li>
		<li>GET /api/version - Get version</li>
		<li>GET /files/{name} - Download a signed document</li>
	</ul>
</body>
</html>
		`)
	})

	return mux
}

func runServerMode(cfg config.Config, port string) {
	server, err := NewApiServer(cfg)
	if err != nil {
		log.Error.Fatalf("Failed to initialize API server: %v", err)
	}

	log.Info.Printf("Starting HTTP server on port %s", port)
	if err := http.ListenAndServe(":"+port, server.routes()); err != nil {
		log.Error.Fatalf("Server failed: %v", err)
	}
}
