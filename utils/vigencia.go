package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reVigenciaInline = regexp.MustCompile(`VIGENCIA\s*[:\-]?\s*(\d{4}\s*[-\s]+\s*\d{4})`)
	reYearPair       = regexp.MustCompile(`(\d{4}\s*[-\s]+\s*\d{4})`)
	reYearHyphenPair = regexp.MustCompile(`\b(\d{4})\s*-\s*(\d{4})\b`)
	reYear           = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	reFourDigits     = regexp.MustCompile(`\d{4}`)
)

// ExtractVigencia locates the card's validity period and renders it as
// "YYYY - YYYY". Strategies run in order, first non-empty wins; "" when the
// period cannot be found. The credential type is accepted for future
// per-layout rules but does not branch today.
func ExtractVigencia(lines []string, _ CredentialType) string {
	strategies := []func([]string) string{
		vigenciaSameLine,
		vigenciaAfterLabel,
		vigenciaBareHyphen,
		vigenciaLooseYears,
	}
	for _, strategy := range strategies {
		if v := strategy(lines); v != "" {
			return v
		}
	}
	return ""
}

// vigenciaSameLine: "VIGENCIA 2021-2031" on a single line.
func vigenciaSameLine(lines []string) string {
	for _, line := range lines {
		up := strings.ToUpper(line)
		if !strings.Contains(up, "VIGENCIA") {
			continue
		}
		if m := reVigenciaInline.FindStringSubmatch(up); len(m) > 1 {
			return formatVigencia(m[1])
		}
	}
	return ""
}

// vigenciaAfterLabel: the year pair printed within two lines below the label.
func vigenciaAfterLabel(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(strings.ToUpper(line), "VIGENCIA") {
			continue
		}
		for j := i + 1; j < len(lines) && j <= i+2; j++ {
			if m := reYearPair.FindStringSubmatch(lines[j]); len(m) > 1 {
				return formatVigencia(m[1])
			}
		}
	}
	return ""
}

// vigenciaBareHyphen: two hyphen-joined years anywhere, accepted only when
// both fall in 1900-2099 and the second is later.
func vigenciaBareHyphen(lines []string) string {
	for _, line := range lines {
		m := reYearHyphenPair.FindStringSubmatch(line)
		if len(m) < 3 {
			continue
		}
		from, _ := strconv.Atoi(m[1])
		to, _ := strconv.Atoi(m[2])
		if from >= 1900 && from <= 2099 && to >= 1900 && to <= 2099 && to > from {
			return formatVigencia(m[0])
		}
	}
	return ""
}

// vigenciaLooseYears: near a VIGENCIA label, collect anything that looks like
// a year on the label line and the two below it and pair the first two found,
// reaching one line further when a lone year needs its partner.
func vigenciaLooseYears(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(strings.ToUpper(line), "VIGENCIA") {
			continue
		}
		for j := i; j < len(lines) && j <= i+2; j++ {
			years := reYear.FindAllString(lines[j], -1)
			if len(years) >= 2 {
				return years[0] + " - " + years[1]
			}
			if len(years) == 1 && j > i && j+1 < len(lines) {
				if m := reYear.FindString(lines[j+1]); m != "" {
					return years[0] + " - " + m
				}
			}
		}
	}
	return ""
}

// formatVigencia renders a matched year pair uniformly as "YYYY - YYYY".
func formatVigencia(raw string) string {
	years := reFourDigits.FindAllString(raw, -1)
	if len(years) >= 2 {
		return years[0] + " - " + years[1]
	}
	return strings.TrimSpace(raw)
}
