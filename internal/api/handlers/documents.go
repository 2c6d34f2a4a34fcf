package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/hireready/interview-api/internal/queue"
	"github.com/hireready/interview-api/pkg/textextract"
)

const maxUploadBytes = 16 << 20

// DocumentHandler accepts content uploads and hands them to the
// ingestion worker via the task queue.
type DocumentHandler struct {
	queueClient *queue.Client
	spoolDir    string
}

func NewDocumentHandler(qc *queue.Client, spoolDir string) *DocumentHandler {
	return &DocumentHandler{queueClient: qc, spoolDir: spoolDir}
}

// Upload spools a multipart "file" part to disk and enqueues ingestion.
// The filename matters: it encodes the company/role tag.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.queueClient == nil {
		writeError(w, http.StatusServiceUnavailable, "ingestion queue unavailable")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file part required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !slices.Contains(textextract.SupportedTypes(), ext) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unsupported file type %s (accepted: %s)", ext, strings.Join(textextract.SupportedTypes(), ", ")))
		return
	}

	spoolPath, err := h.spool(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.queueClient.EnqueueContentIngest(queue.ContentIngestPayload{
		SpoolPath: spoolPath,
		FileName:  header.Filename,
	}); err != nil {
		os.Remove(spoolPath)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "queued",
		"file":   header.Filename,
	})
}

func (h *DocumentHandler) spool(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.spoolDir, 0o755); err != nil {
		return "", fmt.Errorf("create spool dir: %w", err)
	}

	path := filepath.Join(h.spoolDir, uuid.NewString()+filepath.Ext(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create spool file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write spool file: %w", err)
	}
	return path, nil
}
