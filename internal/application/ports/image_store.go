package ports

import "io"

// ImageStore define el puerto de salida para guardar imágenes subidas.
// Las rutas devueltas son relativas al directorio estático ("images/foto.png").
type ImageStore interface {
	// Save guarda el contenido bajo un nombre saneado y devuelve la ruta relativa.
	Save(filename string, content io.Reader) (string, error)
	// Remove elimina el archivo; devuelve false si ya no existía.
	Remove(rel string) (bool, error)
}
