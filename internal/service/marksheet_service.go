package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/model"
)

// Sentinel errors for marksheet parsing.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrExtractionFailed    = errors.New("extraction failed")
	ErrParserUnavailable   = errors.New("parser unavailable")
)

// MarksheetService relays uploaded marksheets to the external document parser
// and consumes its field map. Parsing itself happens in the collaborator; this
// service only validates the upload and interprets the result shape. No retry
// policy of its own: a failed request is reported, not repeated.
type MarksheetService struct {
	cfg    *config.Config
	client *http.Client
	log    zerolog.Logger
}

// NewMarksheetService creates a new MarksheetService.
func NewMarksheetService(cfg *config.Config, log zerolog.Logger) *MarksheetService {
	return &MarksheetService{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.ParserTimeout,
		},
		log: log.With().Str("component", "marksheet_service").Logger(),
	}
}

// parserErrorBody is the parser service's error envelope.
type parserErrorBody struct {
	Error string `json:"error"`
}

// Parse validates the upload and forwards it to the parser service. Returns
// ErrExtractionFailed (wrapping the parser's message) when the document could
// not be read, and ErrParserUnavailable on network or server failure.
func (s *MarksheetService) Parse(ctx context.Context, file multipart.File, header *multipart.FileHeader, opts model.ParseMarksheetOptions) (*model.ParseMarksheetResult, error) {
	if contentType := header.Header.Get("Content-Type"); contentType != "application/pdf" {
		return nil, fmt.Errorf("%w: %s (allowed: application/pdf)", ErrUnsupportedFileType, contentType)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	body, formContentType, err := buildUploadBody(file, header.Filename)
	if err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/parse-marksheet?method=%s&dpi=%d",
		strings.TrimRight(s.cfg.ParserURL, "/"), url.QueryEscape(opts.Method), opts.DPI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", formContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParserUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var eb parserErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		s.log.Warn().
			Int("status", resp.StatusCode).
			Str("parser_error", eb.Error).
			Msg("Parser request failed")
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: status %d", ErrParserUnavailable, resp.StatusCode)
		}
		if eb.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrExtractionFailed, eb.Error)
		}
		return nil, fmt.Errorf("%w: status %d", ErrExtractionFailed, resp.StatusCode)
	}

	// Missing fields are normal: the shape is decoded permissively and
	// absent keys simply stay zero-valued.
	var result model.ParseMarksheetResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrExtractionFailed, err)
	}
	return &result, nil
}

func buildUploadBody(file multipart.File, filename string) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
