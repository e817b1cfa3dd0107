package pkg

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemberID(t *testing.T) {
	pattern := regexp.MustCompile(`^IEDC\d{4}$`)
	for i := 0; i < 20; i++ {
		id, err := NewMemberID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
	}
}

func TestRandDigits(t *testing.T) {
	s, err := RandDigits(6)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, s)
}

func TestNormalizeMemberID(t *testing.T) {
	assert.Equal(t, "IEDC1234", NormalizeMemberID("  iedc1234 "))
	assert.Equal(t, "IEDC1234", NormalizeMemberID("IEDC1234"))
	assert.Equal(t, "", NormalizeMemberID("   "))
}
