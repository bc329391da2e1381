package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CURP layout: AAAA YYMMDD S EE CCC D. Offsets are fixed by the national
// registry; anything shorter than curpMinLen is not worth decoding.
const (
	curpMinLen     = 16
	curpYearStart  = 4
	curpMonthStart = 6
	curpDayStart   = 8
	curpSexPos     = 10
	curpStateStart = 11
	curpStateEnd   = 13
)

// curpStates maps the two-letter birth-state code embedded in a CURP to the
// state name as printed on the credential.
var curpStates = map[string]string{
	"AS": "AGUASCALIENTES", "BC": "BAJA CALIFORNIA", "BS": "BAJA CALIFORNIA SUR",
	"CC": "CAMPECHE", "CL": "COAHUILA", "CM": "COLIMA", "CS": "CHIAPAS",
	"CH": "CHIHUAHUA", "DF": "CIUDAD DE MÉXICO", "DG": "DURANGO",
	"GT": "GUANAJUATO", "GR": "GUERRERO", "HG": "HIDALGO", "JC": "JALISCO",
	"MC": "MÉXICO", "MN": "MICHOACÁN", "MS": "MORELOS", "NT": "NAYARIT",
	"NL": "NUEVO LEÓN", "OC": "OAXACA", "PL": "PUEBLA", "QT": "QUERÉTARO",
	"QR": "QUINTANA ROO", "SP": "SAN LUIS POTOSÍ", "SL": "SINALOA",
	"SR": "SONORA", "TC": "TABASCO", "TS": "TAMAULIPAS", "TL": "TLAXCALA",
	"VZ": "VERACRUZ", "YN": "YUCATÁN", "ZS": "ZACATECAS", "NE": "EXTRANJERO",
}

var reCURP = regexp.MustCompile(`([A-Z]{4}[0-9]{6}[HMX][A-Z]{5,6}[0-9A-Z])`)

// FindCURP returns the first CURP-shaped token found across the lines, or "".
func FindCURP(lines []string) string {
	for _, line := range lines {
		if m := reCURP.FindStringSubmatch(line); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// CURPData holds the fields recoverable from a CURP alone.
type CURPData struct {
	Sex        string
	BirthDate  string // DD/MM/CCYY
	BirthState string // two-letter code
	State      string // looked-up state name, "" if the code is unknown
}

// DecodeCURP extracts sex, birth date and birth state from a CURP.
// It never fails: too-short input yields an all-empty result.
func DecodeCURP(curp string) CURPData {
	return DecodeCURPAt(curp, time.Now())
}

// DecodeCURPAt is DecodeCURP with an explicit clock, used to pin the
// century-inference rule in tests.
//
// The CURP carries only two year digits. If YY is greater than the current
// year's last two digits the person cannot have been born in 20YY yet, so
// 19YY is assumed. The rule misclassifies codes over a hundred years old;
// the registry offers nothing better.
func DecodeCURPAt(curp string, now time.Time) CURPData {
	var data CURPData
	curp = strings.ToUpper(strings.TrimSpace(curp))
	if len(curp) < curpMinLen {
		return data
	}

	switch curp[curpSexPos] {
	case 'H':
		data.Sex = "H"
	case 'M':
		data.Sex = "M"
	default:
		data.Sex = "X"
	}

	year := curp[curpYearStart:curpMonthStart]
	month := curp[curpMonthStart:curpDayStart]
	day := curp[curpDayStart:curpSexPos]
	if yy, err := strconv.Atoi(year); err == nil {
		century := "20"
		if yy > now.Year()%100 {
			century = "19"
		}
		data.BirthDate = fmt.Sprintf("%s/%s/%s%s", day, month, century, year)
	}

	code := curp[curpStateStart:curpStateEnd]
	data.BirthState = code
	data.State = curpStates[code]

	return data
}
