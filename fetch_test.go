package untar

import (
	"context"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivetools/untar/fake"
	"github.com/archivetools/untar/tartest"
)

func TestFetchArchive(t *testing.T) {
	assert := assert.New(t)

	l := slogt.New(t)

	srv := fake.NewServer(t, l)
	defer srv.Close()

	compressed := tartest.Gzip(t, tartest.Build(t, []tartest.File{
		{Name: "file1.txt", Body: []byte("hello")},
	}))
	srv.Serve("/fixture.tgz", compressed)

	data, err := Fetch(context.Background(), l, srv.URL("/fixture.tgz"))
	require.NoError(t, err)
	assert.Equal(compressed, data)

	ar, err := Open(data, Options{})
	require.NoError(t, err)

	body, err := ar.File("file1.txt")
	require.NoError(t, err)
	assert.Equal([]byte("hello"), body)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	assert := assert.New(t)

	l := slogt.New(t)

	srv := fake.NewServer(t, l)
	defer srv.Close()

	buf := tartest.Build(t, []tartest.File{
		{Name: "file1.txt", Body: []byte("hello")},
	})
	srv.Serve("/flaky.tar", buf)
	srv.FailFirst("/flaky.tar", 2)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := Fetch(ctx, l, srv.URL("/flaky.tar"))
	require.NoError(t, err)
	assert.Equal(buf, data)
}

func TestFetchNotFound(t *testing.T) {
	assert := assert.New(t)

	l := slogt.New(t)

	srv := fake.NewServer(t, l)
	defer srv.Close()

	_, err := Fetch(context.Background(), l, srv.URL("/missing.tar"))
	assert.ErrorContains(err, "download failed")
}
