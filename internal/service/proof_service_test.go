package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubStorage struct {
	uploads []string
}

func (s *stubStorage) Upload(_ context.Context, name string, _ io.Reader) (string, error) {
	s.uploads = append(s.uploads, name)
	return "https://files.example.edu/" + name, nil
}

func newProofFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(int64(len(content))+1024))
	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestProofUploadAcceptsPDF(t *testing.T) {
	storage := &stubStorage{}
	svc := NewProofService(storage, 1, testLogger())

	fh := newProofFileHeader(t, "Tournament Certificate.pdf", []byte("%PDF-1.4\n%test"))

	result, err := svc.Upload(context.Background(), fh)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", result.MimeType)
	require.Equal(t, "https://files.example.edu/tournament-certificate.pdf", result.ProofRef)
	require.Len(t, storage.uploads, 1)
}

func TestProofUploadRejectsMissingFile(t *testing.T) {
	svc := NewProofService(&stubStorage{}, 1, testLogger())

	_, err := svc.Upload(context.Background(), nil)
	require.ErrorIs(t, err, ErrProofRequired)
}

func TestProofUploadRejectsDisallowedType(t *testing.T) {
	storage := &stubStorage{}
	svc := NewProofService(storage, 1, testLogger())

	fh := newProofFileHeader(t, "certificate.exe", []byte("MZ\x90\x00\x03\x00\x00\x00"))

	_, err := svc.Upload(context.Background(), fh)
	require.ErrorIs(t, err, ErrProofTypeNotAllowed)
	require.Empty(t, storage.uploads)
}

func TestProofUploadRejectsOversizedFile(t *testing.T) {
	storage := &stubStorage{}
	svc := NewProofService(storage, 1, testLogger())

	payload := "%PDF-1.4\n" + strings.Repeat("a", 2*1024*1024)
	fh := newProofFileHeader(t, "huge.pdf", []byte(payload))

	_, err := svc.Upload(context.Background(), fh)
	require.ErrorIs(t, err, ErrProofTooLarge)
	require.Empty(t, storage.uploads)
}

func TestSanitizeProofName(t *testing.T) {
	require.Equal(t, "tournament-certificate.pdf", sanitizeProofName("Tournament Certificate.pdf"))
	require.Equal(t, "proof.bin", sanitizeProofName("???"))
	require.Equal(t, "scan_01.jpeg", sanitizeProofName("Scan_01.JPEG"))
}
