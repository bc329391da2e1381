package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVigenciaSameLine(t *testing.T) {
	lines := []string{"VIGENCIA 2021-2031"}
	assert.Equal(t, "2021 - 2031", ExtractVigencia(lines, CredentialExtended))
}

func TestExtractVigenciaAfterLabel(t *testing.T) {
	lines := []string{
		"SECCION",
		"VIGENCIA",
		"2021 - 2031",
	}
	assert.Equal(t, "2021 - 2031", ExtractVigencia(lines, CredentialExtended))
}

func TestExtractVigenciaBareHyphen(t *testing.T) {
	lines := []string{
		"OTRAS LINEAS",
		"2015-2025",
	}
	assert.Equal(t, "2015 - 2025", ExtractVigencia(lines, CredentialStandard))
}

func TestExtractVigenciaRejectsReversedPair(t *testing.T) {
	// The strict tiers enforce ordering; with no VIGENCIA label in sight a
	// reversed pair is not a validity period.
	lines := []string{"1800 - 1700"}
	assert.Equal(t, "", ExtractVigencia(lines, CredentialStandard))
}

func TestExtractVigenciaLooseYears(t *testing.T) {
	lines := []string{
		"VIGENCIA",
		"2018",
		"2028",
	}
	assert.Equal(t, "2018 - 2028", ExtractVigencia(lines, CredentialStandard))
}

func TestExtractVigenciaFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4} - \d{4}$`)
	fixtures := [][]string{
		{"VIGENCIA 2021-2031"},
		{"VIGENCIA", "2021   -   2031"},
		{"2015-2025"},
		{"VIGENCIA", "2018", "2028"},
	}
	for _, lines := range fixtures {
		v := ExtractVigencia(lines, CredentialStandard)
		if assert.NotEmpty(t, v, "fixture %v", lines) {
			assert.Regexp(t, pattern, v)
		}
	}
}
