package api

// SignResult is the response of the sign endpoint. A successful sign can
// still carry a failed optional OCR step; OCRError is a non-blocking warning
// in that case, while Error is only set when the whole operation failed.
type SignResult struct {
	Success               bool   `json:"success"`
	FileURL               string `json:"fileUrl,omitempty"`
	OriginalName          string `json:"originalName,omitempty"`
	OCRComplete           bool   `json:"ocrComplete,omitempty"`
	SearchablePDFURL      string `json:"searchablePdfUrl,omitempty"`
	SearchablePDFFilename string `json:"searchablePdfFilename,omitempty"`
	OCRError              string `json:"ocrError,omitempty"`
	Error                 string `json:"error,omitempty"`
}

// Warning returns a human-readable message for a partial failure, or "" when
// nothing went wrong. A non-empty warning does not make the sign a failure;
// the file URL stays usable.
func (r *SignResult) Warning() string {
	if r.Success && r.OCRError != "" {
		return "OCR did not complete: " + r.OCRError
	}
	return ""
}

// SignOptions are the optional processing flags of a sign request.
type SignOptions struct {
	PerformOCR  bool
	OCRLanguage string
}
