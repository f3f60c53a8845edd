package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/grupogen/premios-api/internal/domain/entity"
)

var (
	nonNumeric     = regexp.MustCompile(`[^\d.-]`)
	codePrefix     = regexp.MustCompile(`^\(\d+\)\s*`)
	cafeComboCodes = regexp.MustCompile(`(?i)^\s*\((1062|1063|1064)\)`)
)

// depositKeywords se evalúan en orden; gana la primera coincidencia.
var depositKeywords = []struct {
	keyword string
	deposit string
}{
	{"monteverde", entity.DepositMonteverde},
	{"bettica", entity.DepositBettica},
	{"tobago", entity.DepositTobago1},
}

// Text convierte un campo suelto a texto sin espacios en los extremos.
// nil, mapas y listas dan "".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case map[string]any, entity.Document, []any:
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(x.String())
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// CoerceNumber acepta número o texto; del texto descarta todo lo que no sea dígito, '.' o '-'.
// Cualquier falla devuelve 0.
func CoerceNumber(v any) float64 {
	if f, ok := nativeNumber(v); ok {
		return finite(f)
	}
	s := nonNumeric.ReplaceAllString(Text(v), "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

// StrictNumber interpreta v sin limpiarlo: nil y texto vacío valen 0, texto numérico vale su número,
// cualquier otra cosa no es número (false).
func StrictNumber(v any) (float64, bool) {
	if f, ok := nativeNumber(v); ok {
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func nativeNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseActive interpreta el estado del catálogo. Vacío o desconocido cuenta como activo.
func ParseActive(status any) bool {
	s := strings.ToLower(Text(status))
	if s == "" {
		return true
	}
	if strings.Contains(s, "inactive") {
		return false
	}
	return true
}

// CleanPrizeName quita el código "(1234)" inicial del texto de la recompensa.
func CleanPrizeName(raw string) string {
	return strings.TrimSpace(codePrefix.ReplaceAllString(strings.TrimSpace(raw), ""))
}

// IsCafeCombo indica si la recompensa empieza con un código de combo de café.
func IsCafeCombo(raw string) bool {
	return cafeComboCodes.MatchString(raw)
}

// EntityToDeposit mapea la entidad de un egreso al depósito que la atiende.
// Las entidades no reconocidas se devuelven tal cual; vacío o ausente da entity.Placeholder.
func EntityToDeposit(v any) string {
	s := Text(v)
	if s == "" {
		return entity.Placeholder
	}
	lower := strings.ToLower(s)
	for _, k := range depositKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.deposit
		}
	}
	return s
}

// CatalogKey normaliza una descripción del catálogo para compararla: sin espacios extremos,
// en mayúsculas y sin tildes ("Café" y "CAFE" son la misma clave).
func CatalogKey(desc string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, desc)
	if err != nil {
		folded = desc
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}
