package book

import (
	"context"
	"io"
)

// FileStore 文件存储接口
// 设计说明：
// 1. 接口定义在domain层，本地磁盘实现在infrastructure/storage层
// 2. Save返回可直接写入Book.FileURL或BookImage.URL的访问URL
// 3. objectName由调用方生成（包含扩展名），存储层负责去重命名
type FileStore interface {
	// Save 保存文件，返回访问URL
	Save(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error)

	// Remove 删除文件（按Save返回的URL）
	Remove(ctx context.Context, url string) error
}
