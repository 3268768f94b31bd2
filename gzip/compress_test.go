package gzip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	data := []byte("some archive payload that should survive the round trip")

	var compressed bytes.Buffer
	err := Compress(bytes.NewBuffer(data), &compressed)
	require.NoError(t, err)

	assert.True(IsCompressed(compressed.Bytes()))

	var out bytes.Buffer
	err = Decompress(&compressed, &out)
	require.NoError(t, err)

	assert.Equal(data, out.Bytes())
}

func TestDecompressInvalidStream(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	err := Decompress(bytes.NewReader([]byte("not gzip at all")), &out)
	assert.ErrorContains(err, "failed to create gzip reader")
}

func TestDecompressCorruptBody(t *testing.T) {
	assert := assert.New(t)

	var compressed bytes.Buffer
	err := Compress(bytes.NewBufferString("payload"), &compressed)
	require.NoError(t, err)

	// Valid header, mangled deflate stream.
	corrupt := compressed.Bytes()
	for i := 10; i < len(corrupt)-8; i++ {
		corrupt[i] ^= 0xff
	}

	var out bytes.Buffer
	err = Decompress(bytes.NewReader(corrupt), &out)
	assert.Error(err)
}

func TestIsCompressed(t *testing.T) {
	var tests = []struct {
		name string
		buf  []byte
		want bool
	}{
		{
			name: "gzip magic",
			buf:  []byte{0x1f, 0x8b, 0x08},
			want: true,
		},
		{
			name: "plain tar",
			buf:  make([]byte, 512),
			want: false,
		},
		{
			name: "empty",
			buf:  nil,
			want: false,
		},
		{
			name: "single byte",
			buf:  []byte{0x1f},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompressed(tt.buf))
		})
	}
}
