package upload

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-admin/internal/domain"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Nombres de dispositivo reservados en Windows.
var windowsDeviceNames = map[string]struct{}{
	"CON": {}, "AUX": {}, "COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "PRN": {}, "NUL": {},
}

// SanitizeFilename devuelve una versión segura del nombre de archivo: normaliza a NFKD,
// descarta lo que no es ASCII, convierte separadores de ruta en espacios, colapsa los
// espacios en "_" y conserva solo [A-Za-z0-9_.-]. Devuelve domain.ErrInvalidFilename si
// no queda nada utilizable.
func SanitizeFilename(name string) (string, error) {
	name = norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range name {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	name = b.String()
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if name == "" {
		return "", domain.ErrInvalidFilename
	}
	base := strings.ToUpper(strings.SplitN(name, ".", 2)[0])
	if _, reserved := windowsDeviceNames[base]; reserved {
		name = "_" + name
	}
	return name, nil
}
