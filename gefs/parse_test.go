package gefs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleIDs = "CENTER=7(US-NCEP) SUBCENTER=2 MASTER_TABLE=2 LOCAL_TABLE=1 " +
	"SIGNF_REF_TIME=1(Start_of_Forecast) REF_TIME=2022-01-21T00:00:00Z " +
	"PROD_STATUS=0(Operational) TYPE=1(Forecast)"

func TestParseTagBlock(t *testing.T) {
	// Tested code
	values := parseTagBlock(sampleIDs)

	// Asserts
	assert.Equal(t, "7(US-NCEP)", values["CENTER"])
	assert.Equal(t, "2", values["SUBCENTER"])
	assert.Equal(t, "2022-01-21T00:00:00Z", values["REF_TIME"])
	assert.Equal(t, "1(Forecast)", values["TYPE"])
}

func TestParseTagBlock_IgnoresMalformedTokens(t *testing.T) {
	values := parseTagBlock("CENTER=7 garbage =orphan")
	assert.Equal(t, map[string]string{"CENTER": "7"}, values)
}

func TestCodedLabel(t *testing.T) {
	assert.Equal(t, "US-NCEP", codedLabel("7(US-NCEP)"))
	assert.Equal(t, "Meteorological", codedLabel("0(Meteorological)"))
	assert.Equal(t, "2", codedLabel("2"))
	assert.Equal(t, "", codedLabel(""))
}

func TestParseGribSeconds(t *testing.T) {
	// Tested code
	withSuffix, err1 := parseGribSeconds("21600 sec")
	bare, err2 := parseGribSeconds("3600")

	// Asserts
	assert.Nil(t, err1)
	assert.Equal(t, 6*time.Hour, withSuffix)
	assert.Nil(t, err2)
	assert.Equal(t, time.Hour, bare)
}

func TestParseGribSeconds_Invalid(t *testing.T) {
	_, err := parseGribSeconds("six hours")
	assert.NotNil(t, err)
}

func TestParseGribTime_RFC3339(t *testing.T) {
	parsed, err := parseGribTime("2022-01-21T00:00:00Z")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseGribTime_EpochSeconds(t *testing.T) {
	// 1642723200 is 2022-01-21T00:00:00Z
	parsed, err := parseGribTime("  1642723200 sec UTC")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseGribTime_Invalid(t *testing.T) {
	_, err := parseGribTime("sometime sec UTC")
	assert.NotNil(t, err)
}

func TestParseGribUnit(t *testing.T) {
	assert.Equal(t, "K", parseGribUnit("[K]"))
	assert.Equal(t, "kg/m^2", parseGribUnit("[kg/m^2]"))
	assert.Equal(t, "K", parseGribUnit("K"))
}

func TestIsoDuration(t *testing.T) {
	assert.Equal(t, "PT0S", isoDuration(0))
	assert.Equal(t, "PT6H", isoDuration(6*time.Hour))
	assert.Equal(t, "PT1H30M", isoDuration(90*time.Minute))
	assert.Equal(t, "PT45S", isoDuration(45*time.Second))
	assert.Equal(t, "P16D", isoDuration(384*time.Hour))
	assert.Equal(t, "P16DT6H", isoDuration(390*time.Hour))
}
