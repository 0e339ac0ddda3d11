package resume

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hireloop/intervu-backend/internal/config"
)

// Sentinel errors for resume uploads.
var (
	ErrFileTooLarge = errors.New("file too large")
	ErrParseFailed  = errors.New("resume parse failed")
)

// Allowed MIME types mapped to their stored extension.
var allowedMIMETypes = map[string]string{
	MimePDF:  ".pdf",
	MimeDOCX: ".docx",
}

// Service handles resume upload processing: validation, text extraction,
// field extraction, and archival of the original file.
type Service struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewService creates a resume Service.
func NewService(cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{cfg: cfg, log: log.With().Str("component", "resume").Logger()}
}

// Result is the outcome of processing an uploaded resume.
type Result struct {
	Fields Fields
	Text   string
	FileID string
}

// Process validates, parses and stores an uploaded resume.
func (s *Service) Process(file multipart.File, header *multipart.FileHeader) (*Result, error) {
	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: stream exceeds declared size", ErrFileTooLarge)
	}

	text, err := ExtractText(data, contentType)
	if err != nil {
		s.log.Error().Err(err).Str("content_type", contentType).Msg("resume text extraction failed")
		return nil, fmt.Errorf("%w: %s", ErrParseFailed, err)
	}

	fileID, err := s.archive(data, ext)
	if err != nil {
		return nil, err
	}

	return &Result{
		Fields: ExtractFields(text),
		Text:   text,
		FileID: fileID,
	}, nil
}

// archive writes the original upload under a UUID filename and returns it.
func (s *Service) archive(data []byte, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.cfg.UploadDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return name, nil
}
