package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
}

func TestDetectContentType(t *testing.T) {
	r := bytes.NewReader(pngHeader)

	mtype, err := DetectContentType(r, AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mtype.String())
	assert.Equal(t, ".png", mtype.Extension())

	pos, err := r.Seek(0, 1)
	require.NoError(t, err)
	assert.Zero(t, pos, "reader must be rewound for the upload")
}

func TestDetectContentType_Rejects(t *testing.T) {
	_, err := DetectContentType(bytes.NewReader([]byte("just some text")), AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)

	mtype, err := DetectContentType(bytes.NewReader([]byte("just some text")))
	require.NoError(t, err)
	assert.True(t, mtype.Is("text/plain"))
}
