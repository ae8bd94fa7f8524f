package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"nihom/config"
	"nihom/infras/otel"
	"nihom/shared/constant"
	"nihom/shared/failure"
	"nihom/shared/logger"
)

// Store writes uploaded files to a local directory and hands back the URL
// path the site serves them under.
type Store interface {
	Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

type storeImpl struct {
	dir       string
	urlPrefix string
	maxSize   int64
	otel      otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Store {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("failed to create upload directory")
	}

	return &storeImpl{
		dir:       cfg.Upload.Dir,
		urlPrefix: cfg.Upload.URLPrefix,
		maxSize:   int64(cfg.Upload.MaxSizeMB) << 20,
		otel:      otl,
	}
}

// Save stores the file under its client-supplied name, reduced to its base
// name so the path cannot escape the upload directory. A second upload with
// the same name overwrites the first.
func (s *storeImpl) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (res string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name := filepath.Base(header.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", failure.BadRequestFromString("invalid file name")
	}

	if s.maxSize > 0 && header.Size > s.maxSize {
		return "", failure.BadRequestFromString(fmt.Sprintf("file exceeds the %d MB limit", s.maxSize>>20))
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		logger.ErrorWithStack(err)

		return "", failure.InternalError(err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.ErrorWithStack(err)

		return "", failure.InternalError(err)
	}

	return s.urlPrefix + "/" + name, nil
}
