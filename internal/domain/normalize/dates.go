// Package normalize convierte los campos sueltos que deja el scraper (fechas en
// varias gramáticas, números como texto, estados libres) en valores tipados.
// Ninguna función de este paquete falla: lo que no se entiende degrada a un valor seguro.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/grupogen/premios-api/internal/domain"
)

// ArgentinaZone zona de visualización: UTC-3 fijo, sin horario de verano.
var ArgentinaZone = time.FixedZone("ART", -3*60*60)

// DisplayLayout formato de salida dd/MM/yyyy HH:mm:ss (24h).
const DisplayLayout = "02/01/2006 15:04:05"

// QueryLayout gramática aceptada en los parámetros startDate/endDate.
type QueryLayout string

const (
	QueryLayoutISO QueryLayout = "iso" // YYYY-MM-DD
	QueryLayoutDMY QueryLayout = "dmy" // dd/MM/yyyy
)

// Formatos textuales sin ambigüedad. Sin zona explícita se interpretan en UTC.
var genericLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

var (
	dmyPattern   = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})(?:\s+(\d{2}):(\d{2}):(\d{2}))?$`)
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// ParseDate intenta, en orden: instante nativo, formato genérico (ISO-8601 y similares)
// y dd/MM/yyyy[ HH:mm:ss]. El segundo valor es false si nada funcionó.
func ParseDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseDateString(v)
	default:
		return time.Time{}, false
	}
}

func parseDateString(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return parseDayMonthYear(s)
}

// parseDayMonthYear valida dd/MM/yyyy con hora opcional; la fecha debe existir en el calendario.
func parseDayMonthYear(s string) (time.Time, bool) {
	m := dmyPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if day <= 0 || month <= 0 || year <= 0 || month > 12 {
		return time.Time{}, false
	}
	var hh, mm, ss int
	if m[4] != "" {
		hh, _ = strconv.Atoi(m[4])
		mm, _ = strconv.Atoi(m[5])
		ss, _ = strconv.Atoi(m[6])
		if hh > 23 || mm > 59 || ss > 59 {
			return time.Time{}, false
		}
	}
	t := time.Date(year, time.Month(month), day, hh, mm, ss, 0, time.UTC)
	// 31/02 se normalizaría a marzo: se rechaza.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// FormatDisplay renderiza el instante en hora argentina. Sólo para mostrar.
func FormatDisplay(t time.Time) string {
	return t.In(ArgentinaZone).Format(DisplayLayout)
}

// DisplayDate parsea raw y lo renderiza; si no se puede parsear devuelve el texto crudo.
func DisplayDate(raw any) string {
	if t, ok := ParseDate(raw); ok {
		return FormatDisplay(t)
	}
	return Text(raw)
}

// ParseQueryDate parsea un parámetro de consulta (sin hora) a medianoche UTC.
func ParseQueryDate(s string, layout QueryLayout) (time.Time, error) {
	s = strings.TrimSpace(s)
	var (
		t   time.Time
		err error
	)
	switch layout {
	case QueryLayoutDMY:
		t, err = time.Parse("02/01/2006", s)
	default:
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// EndOfDay extiende t hasta las 23:59:59.999 del mismo día, para que el fin de rango sea inclusivo.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MonthKey devuelve "YYYY-MM" del instante en hora argentina.
func MonthKey(t time.Time) string {
	return t.In(ArgentinaZone).Format("2006-01")
}

// ValidMonthKey indica si s tiene la forma YYYY-MM.
func ValidMonthKey(s string) bool {
	return monthPattern.MatchString(s)
}
