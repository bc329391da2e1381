package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const electorMinLen = 13

// electorStates maps the two-digit residence-state code at the head of a
// clave de elector to the state name. The numbering is the electoral roll's
// own and is unrelated to the CURP letter codes.
var electorStates = map[string]string{
	"01": "AGUASCALIENTES", "02": "BAJA CALIFORNIA", "03": "BAJA CALIFORNIA SUR",
	"04": "CAMPECHE", "05": "COAHUILA", "06": "COLIMA", "07": "CHIAPAS",
	"08": "CHIHUAHUA", "09": "CIUDAD DE MÉXICO", "10": "DURANGO",
	"11": "GUANAJUATO", "12": "GUERRERO", "13": "HIDALGO", "14": "JALISCO",
	"15": "MÉXICO", "16": "MICHOACÁN", "17": "MORELOS", "18": "NAYARIT",
	"19": "NUEVO LEÓN", "20": "OAXACA", "21": "PUEBLA", "22": "QUERÉTARO",
	"23": "QUINTANA ROO", "24": "SAN LUIS POTOSÍ", "25": "SINALOA",
	"26": "SONORA", "27": "TABASCO", "28": "TAMAULIPAS", "29": "TLAXCALA",
	"30": "VERACRUZ", "31": "YUCATÁN", "32": "ZACATECAS",
}

var (
	reClaveStrict = regexp.MustCompile(`\b([A-Z0-9]{18})\b`)
	reClaveLoose  = regexp.MustCompile(`\b([A-Z]{6}\d{8,10}[A-Z0-9]{2,4})\b`)
	reSection     = regexp.MustCompile(`\b(\d{4})\b`)
	reClaveYear   = regexp.MustCompile(`\b(19\d{2}|20[0-2]\d)\b`)
)

// FindClaveElector returns the first clave de elector shaped token across the
// lines. The strict 18-character form is tried on every line before falling
// back to the looser letters-plus-digits shape.
func FindClaveElector(lines []string) string {
	for _, line := range lines {
		if m := reClaveStrict.FindStringSubmatch(line); len(m) > 1 {
			return m[1]
		}
	}
	for _, line := range lines {
		if m := reClaveLoose.FindStringSubmatch(line); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// ClaveData holds the fields recoverable from a clave de elector alone.
type ClaveData struct {
	State   string // residence-state name, "" if the prefix is unknown
	Section string // 4-digit electoral section
	Year    string // registration year
}

// DecodeClaveElector extracts residence state, section and registration year
// from a clave de elector. It never fails: too-short input yields an
// all-empty result.
func DecodeClaveElector(clave string) ClaveData {
	return DecodeClaveElectorAt(clave, time.Now())
}

// DecodeClaveElectorAt is DecodeClaveElector with an explicit clock for the
// plausible-year upper bound.
func DecodeClaveElectorAt(clave string, now time.Time) ClaveData {
	var data ClaveData
	clave = strings.ToUpper(strings.TrimSpace(clave))
	if len(clave) < electorMinLen {
		return data
	}

	data.State = electorStates[clave[0:2]]

	if m := reSection.FindStringSubmatch(clave); len(m) > 1 {
		data.Section = m[1]
	}

	for _, m := range reClaveYear.FindAllString(clave, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if year >= 1900 && year <= now.Year()+1 {
			data.Year = m
			break
		}
	}

	return data
}
