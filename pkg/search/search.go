package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// transform.Chain no es seguro para uso concurrente, por eso se construye uno por llamada.
func normalizer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize devuelve el texto en minúsculas y sin tildes, para comparación
// insensible a mayúsculas y acentos ("Bogotá" -> "bogota").
func Normalize(s string) string {
	out, _, err := transform.String(normalizer(), s)
	if err != nil {
		// Entrada no transformable: se compara tal cual, solo en minúsculas.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches indica si query es substring normalizado de alguno de los campos (OR).
// Una query vacía coincide con todo.
func Matches(query string, fields ...string) bool {
	q := Normalize(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), q) {
			return true
		}
	}
	return false
}
