package datauri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	raw := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x01}
	uri := Encode("audio/wav", raw)
	assert.Contains(t, uri, "data:audio/wav;base64,")

	got, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("no comma here")
	assert.Error(t, err)

	_, err = Decode("audio/wav;base64,AAAA")
	assert.Error(t, err)

	_, err = Decode("data:audio/wav;base64,!!notbase64!!")
	assert.Error(t, err)
}
