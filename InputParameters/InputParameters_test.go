package InputParameters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gotrimesh/geometry2D"
)

func TestMeshParameters(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
NumXElements: 4 
NumYElements: 3
OutputFile: out.json
SU2File: mesh.su2 # Optional
`)
	var input MeshParameters
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Test Case", input.Title)
	assert.Equal(t, geometry2D.RectMeshConfig{NumXElements: 4, NumYElements: 3},
		input.MeshConfig())
	assert.Equal(t, "out.json", input.OutputFile)
	assert.Equal(t, "mesh.su2", input.SU2File)
	assert.Empty(t, input.PNGFile)
	assert.NoError(t, input.Validate())
	var buf bytes.Buffer
	input.Print(&buf)
	assert.Contains(t, buf.String(), "\"Test Case\"\t\t= Title\n")
	assert.Contains(t, buf.String(), "[4]\t\t\t\t= X Elements\n")
	assert.Contains(t, buf.String(), "[mesh.su2]\t\t= SU2 File\n")
	assert.NotContains(t, buf.String(), "PNG File")

	{ // The example shown to users must parse
		var example MeshParameters
		require.NoError(t, example.Parse([]byte(ExampleFile)))
		assert.Equal(t, 4, example.NumXElements)
		assert.Equal(t, 3, example.NumYElements)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("NumXElements: 2\nNumYElements: 5\n"), 0644))
	mp, err := ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, 2, mp.NumXElements)
	assert.Equal(t, 5, mp.NumYElements)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("NumXElements: -2\nNumYElements: 5\n"), 0644))
	_, err = ReadFile(negative)
	assert.ErrorIs(t, err, geometry2D.ErrInvalidArgument)

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("NumXElements: [1\n"), 0644))
	_, err = ReadFile(garbled)
	assert.Error(t, err)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
