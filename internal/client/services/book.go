package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// BookService exposes catalog operations to the CLI.
type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, book models.Book) (*models.Book, error)
	Update(ctx context.Context, id int64, book models.Book) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
	UploadCover(ctx context.Context, path string) (string, error)
}

type bookService struct {
	client api.Client
}

func NewBookService(client api.Client) BookService {
	return &bookService{client: client}
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.client.ListBooks(ctx)
}

func (s *bookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	return s.client.GetBook(ctx, id)
}

func (s *bookService) Create(ctx context.Context, book models.Book) (*models.Book, error) {
	return s.client.CreateBook(ctx, book)
}

func (s *bookService) Update(ctx context.Context, id int64, book models.Book) (*models.Book, error) {
	return s.client.UpdateBook(ctx, id, book)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteBook(ctx, id)
}

// UploadCover reads the image at path and uploads it, returning the stored
// URL to put into the book's ImageURL field.
func (s *bookService) UploadCover(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open cover image: %w", err)
	}
	defer f.Close()

	return s.uploadReader(ctx, filepath.Base(path), f)
}

func (s *bookService) uploadReader(ctx context.Context, name string, r io.Reader) (string, error) {
	return s.client.UploadImage(ctx, name, r)
}
