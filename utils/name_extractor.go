package utils

import (
	"regexp"
	"strings"
)

// Labels that terminate or disqualify a name candidate. EDAD shows up on the
// legacy layout, the rest on all three.
var reStopLabel = regexp.MustCompile(`(DOMICILIO|CLAVE|CURP|FECHA|SECCI[ÓO]N|AÑO|EDAD|VIGENCIA|SEXO)`)

// Institutional header phrasing that OCR reads above the name block.
var reHeader = regexp.MustCompile(`(INSTITUTO|NACIONAL|ELECTORAL|CREDENCIAL|PARA\s+VOTAR|M[EÉ]XICO|ESTADOS\s+UNIDOS)`)

var (
	reNonLetter = regexp.MustCompile(`[^A-ZÁÉÍÓÚÜÑ]`)
	// NOMBRE with the usual single-character OCR confusions.
	reNombreAlone = regexp.MustCompile(`^N[O0]M[B8]R[E3]$`)
	reNombreLine  = regexp.MustCompile(`NOMBRE\s*[:\-]?\s*([A-ZÁÉÍÓÚÜÑ\s\.]{3,})`)
)

// ExtractName recovers the cardholder's full name from the line sequence.
// Strategies run in order, first non-empty result wins; absence is a valid
// outcome, never an error. The domicile anchor goes first because OCR reads
// the large DOMICILIO label far more reliably than the small NOMBRE one.
func ExtractName(lines []string, credType CredentialType) string {
	strategies := []func() string{
		func() string { return nameByDomicileAnchor(lines) },
		func() string {
			if credType != CredentialExtended {
				return ""
			}
			return nameByNombreLabel(lines)
		},
		func() string { return nameByGeneralScan(lines) },
	}
	for _, strategy := range strategies {
		if name := strategy(); name != "" {
			return name
		}
	}
	return ""
}

// nameByDomicileAnchor takes the filtered lines immediately above the first
// DOMICILIO line; the name block sits right on top of the address on every
// layout. The last few survivors (closest to the anchor) form the name.
func nameByDomicileAnchor(lines []string) string {
	anchor := -1
	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), "DOMICILIO") {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return ""
	}

	start := anchor - 10
	if start < 0 {
		start = 0
	}

	var candidates []string
	for _, line := range lines[start:anchor] {
		if ok, clean := nameCandidate(line); ok {
			candidates = append(candidates, clean)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) > 4 {
		candidates = candidates[len(candidates)-4:]
	}

	name := strings.TrimSpace(strings.Join(candidates, " "))
	if len(strings.Fields(name)) >= 2 {
		return name
	}
	return ""
}

// nameByNombreLabel handles the extended layout, where the name is printed
// under a bare NOMBRE label or occasionally inline after it.
func nameByNombreLabel(lines []string) string {
	for i, line := range lines {
		if !reNombreAlone.MatchString(strings.ToUpper(strings.TrimSpace(line))) {
			continue
		}

		var parts []string
		for j := i + 1; j < len(lines) && j < i+6; j++ {
			s := strings.TrimSpace(lines[j])
			if reStopLabel.MatchString(strings.ToUpper(s)) {
				break
			}
			if ok, clean := nameCandidate(s); ok {
				parts = append(parts, clean)
			}
		}

		name := strings.TrimSpace(strings.Join(parts, " "))
		if len(strings.Fields(name)) >= 2 {
			return name
		}
	}

	// Inline form: "NOMBRE: JUAN PEREZ ..."
	for _, line := range lines {
		m := reNombreLine.FindStringSubmatch(strings.ToUpper(line))
		if len(m) < 2 {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name != "" &&
			!reStopLabel.MatchString(name) &&
			!reHeader.MatchString(name) &&
			!hasDigit(name) &&
			len(strings.Fields(name)) >= 2 {
			return name
		}
	}

	return ""
}

var reNombrePrefix = regexp.MustCompile(`^NOMBRE[:\-\s]+`)

// nameByGeneralScan is the layout-agnostic last resort: the first line that
// survives every disqualifier is taken as the name, minus a leading NOMBRE
// label when the OCR glued it onto the value.
func nameByGeneralScan(lines []string) string {
	for _, line := range lines {
		up := strings.ToUpper(strings.TrimSpace(line))
		up = reNombrePrefix.ReplaceAllString(up, "")
		if up == "" || len(strings.Fields(up)) < 2 {
			continue
		}
		if reStopLabel.MatchString(up) || reHeader.MatchString(up) || hasDigit(up) {
			continue
		}
		return up
	}
	return ""
}

// nameCandidate applies the shared per-line filters and returns the trimmed
// line when it could plausibly be part of a name.
func nameCandidate(line string) (bool, string) {
	s := strings.TrimSpace(line)
	if s == "" {
		return false, ""
	}
	up := strings.ToUpper(s)
	if reStopLabel.MatchString(up) || reHeader.MatchString(up) {
		return false, ""
	}
	if hasDigit(up) {
		return false, ""
	}
	if len([]rune(reNonLetter.ReplaceAllString(up, ""))) < 2 {
		return false, ""
	}
	if up == "NOMBRE" {
		return false, ""
	}
	return true, s
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
