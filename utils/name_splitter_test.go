package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNameAgainstCURP(t *testing.T) {
	split := SplitName("CASTILLO OLIVERA RICARDO ORLANDO", "CAOR930531HQRSLC0")

	assert.Equal(t, "CASTILLO", split.Paterno)
	assert.Equal(t, "OLIVERA", split.Materno)
	assert.Equal(t, "RICARDO ORLANDO", split.Nombres)
}

func TestSplitNameCompoundSurname(t *testing.T) {
	// DE LA CRUZ only wins because the CURP prefix says so.
	split := SplitName("DE LA CRUZ GARCIA JUAN", "DEGJ800101HDFXYZ01")

	assert.Equal(t, "DE LA CRUZ", split.Paterno)
	assert.Equal(t, "GARCIA", split.Materno)
	assert.Equal(t, "JUAN", split.Nombres)
}

func TestSplitNameJoseMariaAdjustment(t *testing.T) {
	// The CURP skips JOSE when a second given name follows, so the fourth
	// prefix character comes from LUIS.
	split := SplitName("LUNA VEGA JOSE LUIS", "LUVL560101HDFABC09")

	assert.Equal(t, "LUNA", split.Paterno)
	assert.Equal(t, "VEGA", split.Materno)
	assert.Equal(t, "JOSE LUIS", split.Nombres)
}

func TestSplitNameDeterministic(t *testing.T) {
	first := SplitName("CASTILLO OLIVERA RICARDO ORLANDO", "CAOR930531HQRSLC0")
	second := SplitName("CASTILLO OLIVERA RICARDO ORLANDO", "CAOR930531HQRSLC0")
	assert.Equal(t, first, second)
}

func TestSplitNameWithoutCURP(t *testing.T) {
	split := SplitName("GARCIA LOPEZ JUAN CARLOS", "")

	assert.Equal(t, "GARCIA", split.Paterno)
	assert.Equal(t, "LOPEZ", split.Materno)
	assert.Equal(t, "JUAN CARLOS", split.Nombres)
}

func TestSplitNameDegradedForms(t *testing.T) {
	two := SplitName("GARCIA JUAN", "CAOR930531HQRSLC0")
	assert.Equal(t, "GARCIA", two.Paterno)
	assert.Equal(t, "", two.Materno)
	assert.Equal(t, "JUAN", two.Nombres)

	one := SplitName("JUAN", "CAOR930531HQRSLC0")
	assert.Equal(t, "", one.Paterno)
	assert.Equal(t, "", one.Materno)
	assert.Equal(t, "JUAN", one.Nombres)

	empty := SplitName("", "CAOR930531HQRSLC0")
	assert.Equal(t, NameSplit{}, empty)
}

func TestSplitNameStripsNonLetters(t *testing.T) {
	split := SplitName("castillo. olivera, ricardo orlando", "CAOR930531HQRSLC0")

	assert.Equal(t, "CASTILLO", split.Paterno)
	assert.Equal(t, "OLIVERA", split.Materno)
	assert.Equal(t, "RICARDO ORLANDO", split.Nombres)
}

func TestStripPostalCode(t *testing.T) {
	assert.Equal(t, "FRACC LA HERRADURA III",
		StripPostalCode("FRACC LA HERRADURA III 77050", "77050"))
	assert.Equal(t, "FRACC LA HERRADURA III",
		StripPostalCode("FRACC LA HERRADURA III", "77050"))
	assert.Equal(t, "COL CENTRO",
		StripPostalCode("COL CENTRO", ""))
}
