package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\n14.134725,0.000001,0.0\n17.5,2.35,0.0\n21.022040,0.000002,6.887315\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds, 3)

	assert.Equal(t, 14.134725, ds[0].T)
	assert.Equal(t, 2.35, ds[1].AbsZ)
	assert.Equal(t, 6.887315, ds[2].Spacing)
}

func TestLoad_Idempotent(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\n1.0,3.0,0.0\n2.0,1.0,0.0\n3.0,2.0,0.0\n")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_MalformedRow(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\nabc,2.0,0.1\n")

	_, err := Load(path)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "t", pe.Field)
}

func TestLoad_WrongColumnCount(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\n1.0,2.0,0.1\n2.0,3.0\n")

	_, err := Load(path)
	require.Error(t, err)

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestLoad_BadHeader(t *testing.T) {
	for _, content := range []string{
		"",
		"x,y,z\n1.0,2.0,0.1\n",
		"t,absZ\n1.0,2.0\n",
	} {
		path := writeFile(t, content)
		_, err := Load(path)
		require.Error(t, err, "content %q", content)
		assert.ErrorIs(t, err, ErrBadHeader)
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\n")

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestLoad_UnsortedRows(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\n2.0,1.0,0.0\n1.0,2.0,0.0\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsorted)
}

func TestLoad_DuplicateT(t *testing.T) {
	path := writeFile(t, "t,absZ,spacing\n1.0,1.0,0.0\n1.0,2.0,0.0\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsorted)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ds := Dataset{
		{T: 0.866025, AbsZ: 1.234567, Spacing: 0},
		{T: 1.658312, AbsZ: 0.000004, Spacing: 0},
		{T: 2.179449, AbsZ: 0.987654, Spacing: 1.313124},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Save(path, ds))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(ds))

	for i := range ds {
		assert.InDelta(t, ds[i].T, loaded[i].T, 1e-6)
		assert.InDelta(t, ds[i].AbsZ, loaded[i].AbsZ, 1e-6)
		assert.InDelta(t, ds[i].Spacing, loaded[i].Spacing, 1e-6)
	}
}
