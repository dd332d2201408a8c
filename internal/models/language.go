package models

import (
	"encoding/json"
	"fmt"

	ierr "affiliate-catalog/internal/errors"
)

// Language es uno de los idiomas de contenido, un conjunto cerrado.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"

	DefaultLanguage = LanguageES
)

func Languages() []Language {
	return []Language{LanguageES, LanguageEN}
}

// ParseLanguage acepta exactamente "es" o "en". La cadena vacía devuelve
// DefaultLanguage.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "":
		return DefaultLanguage, nil
	case LanguageES:
		return LanguageES, nil
	case LanguageEN:
		return LanguageEN, nil
	default:
		return "", fmt.Errorf("%w: %q", ierr.ErrUnsupportedLanguage, s)
	}
}

// Translated es un texto visible guardado en todos los idiomas soportados.
type Translated struct {
	ES string `json:"es" bson:"es"`
	EN string `json:"en" bson:"en"`
}

// UnmarshalJSON exige las dos claves con valor no nulo. Se aceptan cadenas
// vacías.
func (t *Translated) UnmarshalJSON(data []byte) error {
	var raw struct {
		ES *string `json:"es"`
		EN *string `json:"en"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ES == nil || raw.EN == nil {
		return fmt.Errorf("%w: translated text needs both es and en", ierr.ErrInvalidInput)
	}
	t.ES, t.EN = *raw.ES, *raw.EN
	return nil
}

// Value devuelve el texto, o el valor cero si t es nil.
func (t *Translated) Value() Translated {
	if t == nil {
		return Translated{}
	}
	return *t
}

// In devuelve la variante de lang. No hay respaldo: un código desconocido es
// un error.
func (t Translated) In(lang Language) (string, error) {
	switch lang {
	case LanguageES:
		return t.ES, nil
	case LanguageEN:
		return t.EN, nil
	default:
		return "", fmt.Errorf("%w: %q", ierr.ErrUnsupportedLanguage, string(lang))
	}
}

// Features asocia cada código de idioma a su lista de características. Cada
// idioma tiene su propio tamaño de lista.
type Features map[string][]string

// In devuelve una copia de la lista de lang, o una lista vacía si no hay
// entrada.
func (f Features) In(lang Language) []string {
	src := f[string(lang)]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
