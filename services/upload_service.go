package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadFiles es la cantidad máxima de fotos por request en /upload
const MaxUploadFiles = 100

var (
	ErrDownload     = errors.New("failed to download image")
	ErrTooManyFiles = fmt.Errorf("at most %d files per upload", MaxUploadFiles)
)

// UploadService guarda fotos en el directorio de uploads
type UploadService interface {
	UploadFromURL(ctx context.Context, link string) (string, error)
	UploadFiles(files []*multipart.FileHeader) ([]string, error)
}

type uploadService struct {
	dir    string
	client *http.Client
}

// NewUploadService crea el servicio. El timeout limita cada descarga de UploadFromURL
func NewUploadService(dir string, timeout time.Duration) UploadService {
	return &uploadService{
		dir:    dir,
		client: &http.Client{Timeout: timeout},
	}
}

// UploadFromURL descarga la imagen y la guarda como photo<millis>.jpg
func (s *uploadService) UploadFromURL(ctx context.Context, link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: invalid link %q", ErrDownload, link)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrDownload, resp.StatusCode)
	}

	name := "photo" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ".jpg"
	dest := filepath.Join(s.dir, name)
	if err := writeFile(dest, resp.Body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	slog.Debug("Photo downloaded", "link", link, "file", name)
	return name, nil
}

// UploadFiles guarda cada archivo con un nombre temporal y lo renombra
// agregando la extensión original. Devuelve los nombres en el mismo orden
func (s *uploadService) UploadFiles(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	uploaded := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := s.saveFile(fh)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, name)
	}
	return uploaded, nil
}

func (s *uploadService) saveFile(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	tempPath := filepath.Join(s.dir, strings.ReplaceAll(uuid.NewString(), "-", ""))
	if err := writeFile(tempPath, src); err != nil {
		return "", fmt.Errorf("store upload %q: %w", fh.Filename, err)
	}

	newPath := tempPath + "." + extension(fh.Filename)
	if err := os.Rename(tempPath, newPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("rename upload %q: %w", fh.Filename, err)
	}
	return filepath.Base(newPath), nil
}

// extension devuelve lo que sigue al último punto; sin punto, el nombre completo
func extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i+1:]
	}
	return filename
}

// writeFile copia r en path; si falla no deja el archivo a medias
func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
