package speech

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAVHeader(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	wav := EncodeWAV(pcm, 22050)

	require.Len(t, wav, 44+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(22050), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24])) // mono
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, pcm, wav[44:])
}

func TestEncodeExtractRoundTrip(t *testing.T) {
	pcm := make([]byte, 128)
	for i := range pcm {
		pcm[i] = byte(i)
	}

	got, rate, err := ExtractPCM(EncodeWAV(pcm, 16000))
	require.NoError(t, err)
	assert.Equal(t, 16000, rate)
	assert.Equal(t, pcm, got)
}

func TestExtractPCMRejectsGarbage(t *testing.T) {
	_, _, err := ExtractPCM([]byte("definitely not audio"))
	assert.Error(t, err)

	_, _, err = ExtractPCM(nil)
	assert.Error(t, err)
}

func TestExtractPCMSkipsExtraChunks(t *testing.T) {
	// Some encoders put a LIST chunk between fmt and data.
	pcm := []byte{0xAA, 0xBB}
	wav := EncodeWAV(pcm, 8000)

	list := make([]byte, 12)
	copy(list[0:4], "LIST")
	binary.LittleEndian.PutUint32(list[4:8], 4)
	copy(list[8:12], "INFO")

	withList := append([]byte{}, wav[:36]...)
	withList = append(withList, list...)
	withList = append(withList, wav[36:]...)
	binary.LittleEndian.PutUint32(withList[4:8], uint32(len(withList)-8))

	got, rate, err := ExtractPCM(withList)
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)
	assert.Equal(t, pcm, got)
}
