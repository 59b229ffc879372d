package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/model"
)

func parserConfig(parserURL string) *config.Config {
	return &config.Config{
		ParserURL:      parserURL,
		ParserTimeout:  2 * time.Second,
		MaxUploadBytes: 1 << 20,
	}
}

// upload builds a multipart file part the way gin's FormFile would deliver it.
func upload(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	return file, header
}

func defaultOpts() model.ParseMarksheetOptions {
	return model.ParseMarksheetOptions{Method: "auto", DPI: 300}
}

func TestParseSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/parse-marksheet", r.URL.Path)
		assert.Equal(t, "auto", r.URL.Query().Get("method"))
		assert.Equal(t, "300", r.URL.Query().Get("dpi"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "marksheet.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"fields":{"name":"ASHA RAO","roll_number":"123456","percentage":"88.4",`+
			`"subjects":[{"name":"PHYSICS","marks":"91","grade":"A1"}]},"method":"text","dpi":300}`)
	}))
	defer srv.Close()

	svc := NewMarksheetService(parserConfig(srv.URL), zerolog.Nop())
	file, header := upload(t, "marksheet.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	result, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, "ASHA RAO", result.Fields.Name)
	assert.Equal(t, "123456", result.Fields.RollNumber)
	assert.Equal(t, model.RawNumber("88.4"), result.Fields.Percentage)
	require.Len(t, result.Fields.Subjects, 1)
	assert.Equal(t, "PHYSICS", result.Fields.Subjects[0].Name)
	assert.Equal(t, "text", result.Method)
}

func TestParsePassesThroughFieldLevelError(t *testing.T) {
	// A readable document with unextractable fields is still a 200: the
	// parser reports the problem inside the field map.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"fields":{"name":"ASHA RAO","error":"could not locate subject table"},"method":"ocr","dpi":300}`)
	}))
	defer srv.Close()

	svc := NewMarksheetService(parserConfig(srv.URL), zerolog.Nop())
	file, header := upload(t, "marksheet.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	result, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.NoError(t, err)
	assert.Equal(t, "could not locate subject table", result.Fields.Error)
	assert.Equal(t, "ASHA RAO", result.Fields.Name)
}

func TestParseRejectsNonPDF(t *testing.T) {
	svc := NewMarksheetService(parserConfig("http://parser.invalid"), zerolog.Nop())
	file, header := upload(t, "marksheet.png", "image/png", []byte("not a pdf"))

	_, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestParseRejectsOversizedFile(t *testing.T) {
	cfg := parserConfig("http://parser.invalid")
	cfg.MaxUploadBytes = 16
	svc := NewMarksheetService(cfg, zerolog.Nop())
	file, header := upload(t, "marksheet.pdf", "application/pdf", bytes.Repeat([]byte("x"), 64))

	_, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestParseExtractionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":"document has no extractable text"}`)
	}))
	defer srv.Close()

	svc := NewMarksheetService(parserConfig(srv.URL), zerolog.Nop())
	file, header := upload(t, "marksheet.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	_, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.ErrorIs(t, err, ErrExtractionFailed)
	assert.Contains(t, err.Error(), "document has no extractable text")
}

func TestParseServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewMarksheetService(parserConfig(srv.URL), zerolog.Nop())
	file, header := upload(t, "marksheet.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	_, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.ErrorIs(t, err, ErrParserUnavailable)
}

func TestParseNetworkFailureMapsToUnavailable(t *testing.T) {
	// Closed server: the request never completes.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewMarksheetService(parserConfig(srv.URL), zerolog.Nop())
	file, header := upload(t, "marksheet.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	_, err := svc.Parse(context.Background(), file, header, defaultOpts())
	require.ErrorIs(t, err, ErrParserUnavailable)
}
