package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mxidsoft/ine-ocr-service/dto"
)

var (
	reSpaces       = regexp.MustCompile(`\s+`)
	reBirthDate    = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)
	reAnioRegistro = regexp.MustCompile(`(\d{4}\s\d+)`)
	reSexo         = regexp.MustCompile(`\b(H|M|X)\b`)
	reSectionLine  = regexp.MustCompile(`^\d{4}$`)
	reStreetNumber = regexp.MustCompile(`\b(\d{1,5}[A-Z]?(?:\s*INT\.?\s*\d+)?)\b`)
	rePostalCode   = regexp.MustCompile(`\b(\d{5})\b`)
	// Last-resort vigencia shape; deliberately unvalidated, see ExtractFields.
	reVigenciaLoose = regexp.MustCompile(`(\d{4}\s*[-]?\s*?\d{4})`)
)

// NormalizeLines trims each OCR line, collapses internal whitespace and drops
// empties. Line order is preserved: it is the only spatial signal the
// extraction heuristics have.
func NormalizeLines(texts []string) []string {
	lines := make([]string, 0, len(texts))
	for _, t := range texts {
		t = reSpaces.ReplaceAllString(strings.TrimSpace(t), " ")
		if t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// ExtractFields runs the full front-side extraction over raw OCR lines and
// assembles the field record. Every picker is total: a field that cannot be
// recovered stays an empty string, and missing identifiers simply yield
// empty decoder output for the backfill passes to skip.
func ExtractFields(texts []string) dto.CredentialFields {
	lines := NormalizeLines(texts)

	credType := ClassifyCredential(lines)
	curp := FindCURP(lines)
	clave := FindClaveElector(lines)
	curpData := DecodeCURP(curp)
	claveData := DecodeClaveElector(clave)

	fields := dto.CredentialFields{
		TipoCredencial:  string(credType),
		EsINE:           strings.Contains(strings.ToUpper(strings.Join(lines, " ")), "INSTITUTO NACIONAL ELECTORAL"),
		Nombre:          ExtractName(lines, credType),
		CURP:            curp,
		ClaveElector:    clave,
		FechaNacimiento: findBirthDate(lines),
		AnioRegistro:    searchLines(reAnioRegistro, lines),
		Seccion:         findSection(lines),
		Vigencia:        ExtractVigencia(lines, credType),
		Sexo:            searchLines(reSexo, lines),
		Pais:            "Mex",
	}

	// The three lines after DOMICILIO are street, neighborhood and state in
	// that order on every layout. A short tail just leaves them empty.
	for i, line := range lines {
		if !strings.Contains(strings.ToUpper(line), "DOMICILIO") {
			continue
		}
		if i+1 < len(lines) {
			fields.Calle = lines[i+1]
		}
		if i+2 < len(lines) {
			fields.Colonia = lines[i+2]
		}
		if i+3 < len(lines) {
			fields.Estado = lines[i+3]
		}
		break
	}

	if m := reStreetNumber.FindStringSubmatch(fields.Calle); len(m) > 1 {
		fields.Numero = m[1]
	}
	fields.CodigoPostal = searchLines(rePostalCode, []string{fields.Colonia, fields.Estado})

	// Backfill passes, fixed order. Each triggers only when the picker above
	// came back empty or too weak to trust.
	if fields.Sexo == "" {
		fields.Sexo = curpData.Sex
	}
	if fields.FechaNacimiento == "" {
		fields.FechaNacimiento = curpData.BirthDate
	}
	if fields.Seccion == "" {
		fields.Seccion = claveData.Section
	}
	if fields.AnioRegistro == "" && claveData.Year != "" {
		// The card prints the registration year with a two-digit counter.
		fields.AnioRegistro = claveData.Year + " 00"
	}
	if strings.TrimSpace(fields.Estado) == "" || len(strings.TrimSpace(fields.Estado)) < 5 {
		if curpData.State != "" {
			fields.Estado = curpData.State
		} else if claveData.State != "" {
			fields.Estado = claveData.State
		}
	}

	if fields.AnioRegistro != "" && !strings.Contains(fields.AnioRegistro, " ") {
		fields.AnioRegistro += " 00"
	}

	// Loose year-pair fallback when the dedicated extractor found nothing.
	// This tier applies no ordering check, so a "later - earlier" pair can
	// surface here; accepted behavior inherited from the card population.
	if fields.Vigencia == "" {
		fields.Vigencia = searchLines(reVigenciaLoose, lines)
	}
	if fields.Vigencia != "" {
		fields.Vigencia = formatVigencia(fields.Vigencia)
	}

	return fields
}

// searchLines returns the first submatch of re across the lines, or "".
func searchLines(re *regexp.Regexp, lines []string) string {
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// findBirthDate picks the first DD/MM/YYYY token that is a plausible date,
// so stray slashed numbers elsewhere on the card are not mistaken for it.
func findBirthDate(lines []string) string {
	for _, line := range lines {
		m := reBirthDate.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		parts := strings.Split(m[1], "/")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 &&
			year >= 1900 && year <= time.Now().Year() {
			return m[1]
		}
	}
	return ""
}

// findSection returns the first line that is exactly a 4-digit run; the
// electoral section is printed alone on its own line.
func findSection(lines []string) string {
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if reSectionLine.MatchString(s) {
			return s
		}
	}
	return ""
}
