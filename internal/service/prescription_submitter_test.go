package service

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrescriptionCode(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	code, err := generatePrescriptionCode(now, bytes.NewReader([]byte{0xAB, 0xC1, 0x23}))
	require.NoError(t, err)
	assert.Equal(t, "RX-20261017-ABC123", code)

	code, err = generatePrescriptionCode(now, rand.Reader)
	require.NoError(t, err)
	assert.Regexp(t, `^RX-20261017-[0-9A-F]{6}$`, code)
}

func TestGeneratePrescriptionCode_RandomFailure(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	boom := errors.New("entropy unavailable")

	code, err := generatePrescriptionCode(now, iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, code)

	_, err = generatePrescriptionCode(now, bytes.NewReader([]byte{0x01}))
	assert.Error(t, err)
}
