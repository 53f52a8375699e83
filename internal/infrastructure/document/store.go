package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"docstamp/internal/config"
	"docstamp/internal/domain/entity"
)

// Store resolves document ids to files on disk. Documents awaiting
// signatures live in the incoming folder, stamped output goes to the
// stamped folder, signature images are read from the signatures folder.
// Upload mechanics are out of scope; the store only works with what is
// already there.
type Store interface {
	// ListIncoming lists the documents awaiting signatures.
	ListIncoming() ([]entity.Document, error)

	// ResolveIncoming returns the path of an incoming document by id
	// (filename without extension).
	ResolveIncoming(documentID string) (string, error)

	// SignaturePath returns the path of a signature image by filename,
	// rejecting anything that escapes the signatures folder.
	SignaturePath(filename string) (string, error)

	// StampedPath returns the output path for a stamped document.
	StampedPath(filename string) string

	GetIncomingPath() string
	GetStampedPath() string
	GetSignaturePath() string
}

type store struct {
	config *config.DocumentConfig
	logger *zap.Logger
}

func NewStore(cfg *config.Config, logger *zap.Logger) (Store, error) {
	s := &store{
		config: &cfg.Document,
		logger: logger,
	}

	// Ensure all directories exist
	if err := s.ensureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create document directories: %w", err)
	}

	logger.Info("Document store initialized",
		zap.String("base_path", cfg.Document.BasePath),
		zap.String("incoming_folder", s.GetIncomingPath()),
		zap.String("stamped_folder", s.GetStampedPath()),
		zap.String("signature_folder", s.GetSignaturePath()),
	)

	return s, nil
}

func (s *store) ensureDirectories() error {
	dirs := []string{
		s.GetIncomingPath(),
		s.GetStampedPath(),
		s.GetSignaturePath(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

func (s *store) GetIncomingPath() string {
	return filepath.Join(s.config.BasePath, s.config.IncomingFolder)
}

func (s *store) GetStampedPath() string {
	return filepath.Join(s.config.BasePath, s.config.StampedFolder)
}

func (s *store) GetSignaturePath() string {
	return filepath.Join(s.config.BasePath, s.config.SignatureFolder)
}

func (s *store) ListIncoming() ([]entity.Document, error) {
	entries, err := os.ReadDir(s.GetIncomingPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read incoming folder: %w", err)
	}

	docs := make([]entity.Document, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), s.config.FileExtension) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			s.logger.Warn("Skipping unreadable document", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		docs = append(docs, entity.Document{
			ID:         strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Filename:   e.Name(),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *store) ResolveIncoming(documentID string) (string, error) {
	if documentID == "" || documentID != filepath.Base(documentID) {
		return "", fmt.Errorf("invalid document id %q", documentID)
	}

	path := filepath.Join(s.GetIncomingPath(), documentID+s.config.FileExtension)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document %q not found", documentID)
		}
		return "", fmt.Errorf("failed to stat document %q: %w", documentID, err)
	}

	return path, nil
}

func (s *store) SignaturePath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid signature filename %q", filename)
	}

	path := filepath.Join(s.GetSignaturePath(), filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("signature image %q not found", filename)
		}
		return "", fmt.Errorf("failed to stat signature image %q: %w", filename, err)
	}

	return path, nil
}

func (s *store) StampedPath(filename string) string {
	return filepath.Join(s.GetStampedPath(), filepath.Base(filename))
}
