package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/domain"
)

// Storage guarda archivos subidos en <staticDir>/<subdir> y los referencia con la ruta
// relativa "<subdir>/<nombre>", que es la que se persiste en los documentos.
type Storage struct {
	staticDir string
	subdir    string
}

// NewStorage crea el directorio de destino si no existe.
func NewStorage(staticDir, subdir string) (*Storage, error) {
	s := &Storage{staticDir: filepath.Clean(staticDir), subdir: subdir}
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subidas %s: %w", s.Dir(), err)
	}
	return s, nil
}

// Dir devuelve el directorio físico de destino.
func (s *Storage) Dir() string {
	return filepath.Join(s.staticDir, s.subdir)
}

// Save escribe el contenido bajo un nombre saneado y devuelve la ruta relativa.
// Un archivo existente con el mismo nombre se sobrescribe.
func (s *Storage) Save(filename string, content io.Reader) (string, error) {
	name, err := SanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de subidas %s: %w", s.Dir(), err)
	}
	dst := filepath.Join(s.Dir(), name)

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("crear %s: %w", dst, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return "", fmt.Errorf("escribir %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cerrar %s: %w", dst, err)
	}
	return path.Join(s.subdir, name), nil
}

// Remove borra el archivo referenciado por una ruta relativa al directorio estático.
// Devuelve (false, nil) si ya no existe. Rutas que salen del directorio estático o que
// apuntan a un directorio se rechazan.
func (s *Storage) Remove(rel string) (bool, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return false, err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("eliminar %s: %w", full, err)
	}
	return true, nil
}

func (s *Storage) resolve(rel string) (string, error) {
	if rel == "" || filepath.IsAbs(rel) {
		return "", domain.ErrInvalidFilename
	}
	full := filepath.Join(s.staticDir, filepath.FromSlash(rel))
	within, err := filepath.Rel(s.staticDir, full)
	if err != nil || within == "." || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", domain.ErrInvalidFilename
	}
	if full == s.Dir() {
		return "", domain.ErrInvalidFilename
	}
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		return "", domain.ErrInvalidFilename
	}
	return full, nil
}
