// Package storage 文件存储的本地磁盘实现
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/libreria/bookshop/internal/domain/book"
	"github.com/libreria/bookshop/internal/infrastructure/config"
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// LocalFileStore 本地磁盘文件存储
// 设计说明：
// 1. 实现domain/book/filestore.go定义的FileStore接口
// 2. 文件名使用UUID前缀，避免同名文件互相覆盖
// 3. 返回的URL = BaseURL + "/" + 存储文件名，由HTTP层挂载静态目录提供访问
type LocalFileStore struct {
	baseDir string
	baseURL string
}

// NewLocalFileStore 创建本地文件存储
// 启动时确保存储目录存在
func NewLocalFileStore(cfg *config.Config) (*LocalFileStore, error) {
	if err := os.MkdirAll(cfg.Storage.BaseDir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, "创建存储目录失败")
	}

	return &LocalFileStore{
		baseDir: cfg.Storage.BaseDir,
		baseURL: strings.TrimRight(cfg.Storage.BaseURL, "/"),
	}, nil
}

// Save 保存文件，返回访问URL
func (s *LocalFileStore) Save(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	// 1. 生成唯一存储文件名：{uuid}_{原始文件名}
	// 原始文件名只保留basename，防止路径穿越
	name := uuid.NewString() + "_" + filepath.Base(objectName)
	path := filepath.Join(s.baseDir, name)

	// 2. 写入磁盘
	f, err := os.Create(path)
	if err != nil {
		return "", apperrors.New(apperrors.ErrCodeStorageError, "保存文件失败").WithCause(err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", apperrors.New(apperrors.ErrCodeStorageError, "写入文件失败").WithCause(err)
	}

	return s.baseURL + "/" + name, nil
}

// Remove 删除文件（按Save返回的URL）
func (s *LocalFileStore) Remove(ctx context.Context, url string) error {
	name := strings.TrimPrefix(url, s.baseURL+"/")
	// URL不属于本存储时不做任何事
	if name == url || strings.Contains(name, "/") {
		return nil
	}

	if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil && !os.IsNotExist(err) {
		return apperrors.New(apperrors.ErrCodeStorageError, "删除文件失败").WithCause(err)
	}
	return nil
}

// BaseDir 存储根目录（HTTP层挂载静态目录时使用）
func (s *LocalFileStore) BaseDir() string {
	return s.baseDir
}

var _ book.FileStore = (*LocalFileStore)(nil)
