// Package jsonstore implementa los puertos de persistencia sobre documentos JSON en disco.
//
// Cada entidad vive en un único archivo que se lee completo y se reescribe completo en
// cada mutación. Un archivo ausente o ilegible como JSON equivale a una colección vacía.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// Document es un archivo JSON tratado como el estado completo de una colección.
// Update serializa lectura→mutación→escritura con un mutex por documento.
type Document[T any] struct {
	path   string
	indent string
	empty  func() T
	log    *logger.Logger

	mu sync.Mutex
}

// NewDocument construye un documento. empty devuelve la colección vacía (no nil) que se usa
// cuando el archivo no existe o no se puede decodificar.
func NewDocument[T any](path string, indent int, empty func() T, log *logger.Logger) *Document[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Document[T]{
		path:   path,
		indent: strings.Repeat(" ", indent),
		empty:  empty,
		log:    log,
	}
}

// Load lee el documento completo.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

// Save reescribe el documento completo.
func (d *Document[T]) Save(ctx context.Context, v T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(ctx, v)
}

// Update carga el documento, aplica fn y lo guarda. Si fn devuelve error no se escribe nada.
func (d *Document[T]) Update(ctx context.Context, fn func(*T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, err := d.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&v); err != nil {
		return err
	}
	return d.save(ctx, v)
}

func (d *Document[T]) load(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	raw, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return d.empty(), nil
		}
		var zero T
		return zero, fmt.Errorf("leer %s: %w", d.path, err)
	}
	v := d.empty()
	if err := json.Unmarshal(raw, &v); err != nil {
		d.log.Warn().Err(err).Str("file", d.path).Msg("documento JSON ilegible, se usa colección vacía")
		return d.empty(), nil
	}
	return v, nil
}

func (d *Document[T]) save(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", d.indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("codificar %s: %w", d.path, err)
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("archivo temporal para %s: %w", d.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op después del rename

	if _, err := tmp.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("permisos %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", d.path, err)
	}
	d.log.Debug().Str("file", d.path).Int("bytes", buf.Len()).Msg("documento guardado")
	return nil
}
