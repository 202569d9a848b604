package book

import (
	"context"
	"io"

	"github.com/libreria/bookshop/internal/domain/book"
)

// UploadFileUseCase 图书文件上传用例（仅MANAGER）
// 设计说明：
// 1. fileType区分用途：image追加为图书图片，pdf作为电子书内容文件
// 2. 存储走domain定义的FileStore接口，本地磁盘实现在infrastructure/storage
// 3. pdf只允许上传到DIGITAL类型图书（领域规则AttachFile校验）
type UploadFileUseCase struct {
	bookRepo  book.Repository
	fileStore book.FileStore
}

// NewUploadFileUseCase 创建文件上传用例
func NewUploadFileUseCase(bookRepo book.Repository, fileStore book.FileStore) *UploadFileUseCase {
	return &UploadFileUseCase{
		bookRepo:  bookRepo,
		fileStore: fileStore,
	}
}

// UploadFileRequest 文件上传请求DTO
type UploadFileRequest struct {
	BookID      uint
	FileType    string // image | pdf
	FileName    string // 原始文件名
	ContentType string
	Content     io.Reader
}

// UploadFileResponse 文件上传响应DTO
type UploadFileResponse struct {
	URL string `json:"url"`
}

// Execute 执行文件上传
func (uc *UploadFileUseCase) Execute(ctx context.Context, req UploadFileRequest) (*UploadFileResponse, error) {
	// 1. 校验文件用途
	if req.FileType != "image" && req.FileType != "pdf" {
		return nil, book.ErrInvalidFileType
	}

	// 2. 确认图书存在
	b, err := uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	// pdf上传先做领域规则校验，避免文件已落盘才发现类型不符
	if req.FileType == "pdf" && b.Type != book.TypeDigital {
		return nil, book.ErrNotDigitalBook
	}

	// 3. 保存文件
	url, err := uc.fileStore.Save(ctx, req.FileName, req.ContentType, req.Content)
	if err != nil {
		return nil, err
	}

	// 4. 按用途关联到图书
	switch req.FileType {
	case "image":
		image := &book.BookImage{
			BookID:    req.BookID,
			URL:       url,
			IsPrimary: len(b.Images) == 0, // 第一张图自动作为主图
		}
		if err := uc.bookRepo.AddImage(ctx, image); err != nil {
			uc.removeQuietly(ctx, url)
			return nil, err
		}

	case "pdf":
		if err := b.AttachFile(url); err != nil {
			uc.removeQuietly(ctx, url)
			return nil, err
		}
		if err := uc.bookRepo.Update(ctx, b); err != nil {
			uc.removeQuietly(ctx, url)
			return nil, err
		}
	}

	return &UploadFileResponse{URL: url}, nil
}

// removeQuietly 关联失败时清理已落盘文件，清理失败不覆盖原错误
func (uc *UploadFileUseCase) removeQuietly(ctx context.Context, url string) {
	_ = uc.fileStore.Remove(ctx, url)
}
