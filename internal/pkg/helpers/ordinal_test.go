package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		111: "111th",
	}

	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestYearLabel(t *testing.T) {
	assert.Equal(t, "1st Year", YearLabel(1))
	assert.Equal(t, "2nd Year", YearLabel(2))
	assert.Equal(t, "3rd Year", YearLabel(3))
	assert.Equal(t, "4th Year", YearLabel(4))
}
