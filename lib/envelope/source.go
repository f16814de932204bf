package envelopehandler

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const s3Scheme = "s3://"

// DocumentSource читает содержимое исходных документов конверта
type DocumentSource interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// NewDocumentSource локальные файлы, а пути вида s3://bucket/key читаются из S3, если передан клиент
func NewDocumentSource(s3client *minio.Client) DocumentSource {
	return &sourceImpl{
		s3client: s3client,
	}
}

type sourceImpl struct {
	s3client *minio.Client
}

func (s sourceImpl) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, s3Scheme) {
		return s.readS3(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла %v", path)
	}
	return data, nil
}

func (s sourceImpl) readS3(ctx context.Context, path string) ([]byte, error) {
	if s.s3client == nil {
		return nil, errors.Errorf("S3 не настроен, файл %v недоступен", path)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, errors.Errorf("некорректный путь S3: %v", path)
	}
	obj, err := s.s3client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения файла %v из S3", path)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла %v из S3", path)
	}
	return data, nil
}
