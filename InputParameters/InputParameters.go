package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/gotrimesh/geometry2D"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title        string `yaml:"Title"`
	NumXElements int    `yaml:"NumXElements"`
	NumYElements int    `yaml:"NumYElements"`
	OutputFile   string `yaml:"OutputFile"`
	SU2File      string `yaml:"SU2File"`
	GeoJSONFile  string `yaml:"GeoJSONFile"`
	PNGFile      string `yaml:"PNGFile"`
}

const ExampleFile = `
########################################
Title: "Unit Square"
NumXElements: 4
NumYElements: 3
OutputFile: triangulation.json # Optional
SU2File: mesh.su2               # Optional
########################################
`

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func ReadFile(path string) (mp *MeshParameters, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	mp = &MeshParameters{}
	if err = mp.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err = mp.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return
}

func (mp *MeshParameters) Validate() error {
	if mp.NumXElements < 0 || mp.NumYElements < 0 {
		return fmt.Errorf("%w: element counts must be non-negative, have %d x %d",
			geometry2D.ErrInvalidArgument, mp.NumXElements, mp.NumYElements)
	}
	return nil
}

func (mp *MeshParameters) MeshConfig() geometry2D.RectMeshConfig {
	return geometry2D.RectMeshConfig{
		NumXElements: mp.NumXElements,
		NumYElements: mp.NumYElements,
	}
}

func (mp *MeshParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", mp.Title)
	fmt.Fprintf(w, "[%d]\t\t\t\t= X Elements\n", mp.NumXElements)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Y Elements\n", mp.NumYElements)
	for _, f := range []struct{ name, value string }{
		{"Output File", mp.OutputFile},
		{"SU2 File", mp.SU2File},
		{"GeoJSON File", mp.GeoJSONFile},
		{"PNG File", mp.PNGFile},
	} {
		if len(f.value) != 0 {
			fmt.Fprintf(w, "[%s]\t\t= %s\n", f.value, f.name)
		}
	}
}
