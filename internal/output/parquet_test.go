package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/florasim/florasim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectWriter stands in for a cloud object writer.
type fakeObjectWriter struct {
	buf    bytes.Buffer
	closed bool
}

func (f *fakeObjectWriter) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *fakeObjectWriter) Close() error {
	f.closed = true
	return nil
}

func TestCloudParquetFile_WriteOnly(t *testing.T) {
	ow := &fakeObjectWriter{}
	file := newCloudParquetFile(ow)

	n, err := file.Write([]byte("PAR1"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "PAR1", ow.buf.String())

	_, err = file.Read(make([]byte, 4))
	assert.Error(t, err)

	_, err = file.Seek(0, io.SeekEnd)
	assert.Error(t, err)

	offset, err := file.Seek(2, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), offset)
	offset, err = file.Seek(3, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(5), offset)

	require.NoError(t, file.Close())
	assert.True(t, ow.closed, "closing the parquet file must close the object writer")
}

func TestNewParquetSink(t *testing.T) {
	t.Run("local destination needs no cloud factory", func(t *testing.T) {
		sink, err := NewParquetSink(&models.Config{
			OutputFormat:      "parquet",
			OutputPath:        t.TempDir(),
			OutputFolder:      "florasim",
			OutputDestination: "local",
		})
		require.NoError(t, err)
		assert.Nil(t, sink.cloudFactory)
		assert.NoError(t, sink.Close())
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := NewParquetSink(&models.Config{
			OutputFormat:      "parquet",
			OutputDestination: "cloud",
			CloudStorage:      models.CloudStorageConfig{Provider: "gcs"},
		})
		assert.EqualError(t, err, "unsupported cloud storage provider: gcs")
	})
}
