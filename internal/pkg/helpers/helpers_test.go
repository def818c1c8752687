package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%fan%", ContainsPattern("fan"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, ContainsPattern(`c:\d`))
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, NullableString(""))
	assert.Nil(t, NullableString("   "))
	if got := NullableString(" Fan 3 "); assert.NotNil(t, got) {
		assert.Equal(t, "Fan 3", *got)
	}
	assert.Equal(t, "", StringValue(nil))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 123, time.FixedZone("IST", 5*3600+1800))
	assert.Equal(t, "2024-03-09 08:35:07", FormatTimestamp(ts))
	assert.Nil(t, FormatOptionalTimestamp(nil))
	assert.Equal(t, "2024-03-09 08:35:07", *FormatOptionalTimestamp(&ts))
}
