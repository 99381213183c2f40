/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gotrimesh/InputParameters"
	"github.com/notargets/gotrimesh/geometry2D"
	"github.com/notargets/gotrimesh/graphics"
	"github.com/notargets/gotrimesh/readfiles"
	"github.com/notargets/gotrimesh/triangulation"
	"github.com/notargets/gotrimesh/utils"
)

type MeshModel struct {
	Config      geometry2D.RectMeshConfig
	OutputFile  string
	SU2File     string
	GeoJSONFile string
	PNGFile     string
	Graph       bool
	TUI         bool
	Stats       bool
}

func init() {
	rootCmd.AddCommand(newMeshCmd(viper.GetViper()))
}

func newMeshCmd(v *viper.Viper) (meshCmd *cobra.Command) {
	meshCmd = &cobra.Command{
		Use:   "mesh",
		Short: "Triangulate the unit square and write the triangle areas",
		Long: `
Splits the unit square into nx by ny cells, divides every cell into two
triangles and writes each triangle's vertices and area as JSON.

gotrimesh mesh -x 10 -y 5 -o triangulation.json`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				mm *MeshModel
			)
			if mm, err = processInput(cmd, v); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return RunMesh(ctx, mm, cmd.OutOrStdout())
		},
	}
	flags := meshCmd.Flags()
	flags.IntP("nx", "x", 10, "number of elements in x")
	flags.IntP("ny", "y", 5, "number of elements in y")
	flags.BoolP("prompt", "p", false, "ask for the element counts as \"nx,ny\"")
	flags.Bool("retry", false, "ask again after invalid input at the prompt")
	flags.StringP("inputFile", "I", "", "YAML file for mesh parameters like:\n\t- NumXElements\n\t- NumYElements")
	flags.StringP("output", "o", triangulation.DefaultFileName, "JSON output file")
	flags.String("su2", "", "also write the mesh in SU2 format to this file")
	flags.String("geojson", "", "also write the triangles as GeoJSON to this file")
	flags.String("png", "", "also render the mesh to this PNG file")
	flags.BoolP("graph", "g", false, "display the mesh in a chart window")
	flags.Bool("tui", false, "display the mesh in the terminal")
	flags.Bool("stats", false, "print mesh statistics")
	_ = v.BindPFlags(flags)
	return
}

func newPrompter(cmd *cobra.Command, retry bool) *Prompter {
	if in := cmd.InOrStdin(); in != os.Stdin {
		return &Prompter{In: in, Out: cmd.OutOrStdout(), Retry: retry}
	}
	return NewStdinPrompter(retry)
}

// processInput resolves the run with precedence flag, env, config file,
// parameter file, defaults. The prompt replaces the element counts.
func processInput(cmd *cobra.Command, v *viper.Viper) (mm *MeshModel, err error) {
	mm = &MeshModel{
		Config: geometry2D.RectMeshConfig{
			NumXElements: v.GetInt("nx"),
			NumYElements: v.GetInt("ny"),
		},
		OutputFile:  v.GetString("output"),
		SU2File:     v.GetString("su2"),
		GeoJSONFile: v.GetString("geojson"),
		PNGFile:     v.GetString("png"),
		Graph:       v.GetBool("graph"),
		TUI:         v.GetBool("tui"),
		Stats:       v.GetBool("stats"),
	}
	if file := v.GetString("inputFile"); len(file) != 0 {
		var ip *InputParameters.MeshParameters
		if ip, err = InputParameters.ReadFile(file); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Example File:%s\n", InputParameters.ExampleFile)
			return nil, err
		}
		ip.Print(cmd.OutOrStdout())
		mm.applyParameters(v, ip)
	}
	if v.GetBool("prompt") {
		if mm.Config, err = newPrompter(cmd, v.GetBool("retry")).ReadConfig(); err != nil {
			return nil, err
		}
	}
	return
}

func (mm *MeshModel) applyParameters(v *viper.Viper, ip *InputParameters.MeshParameters) {
	cfg := ip.MeshConfig()
	if !v.IsSet("nx") {
		mm.Config.NumXElements = cfg.NumXElements
	}
	if !v.IsSet("ny") {
		mm.Config.NumYElements = cfg.NumYElements
	}
	for _, f := range []struct {
		key    string
		target *string
		value  string
	}{
		{"output", &mm.OutputFile, ip.OutputFile},
		{"su2", &mm.SU2File, ip.SU2File},
		{"geojson", &mm.GeoJSONFile, ip.GeoJSONFile},
		{"png", &mm.PNGFile, ip.PNGFile},
	} {
		if !v.IsSet(f.key) && len(f.value) != 0 {
			*f.target = f.value
		}
	}
}

// RunMesh builds the mesh, writes the triangle records and any requested
// exports, then shows the requested views. The chart view blocks until ctx is
// done.
func RunMesh(ctx context.Context, mm *MeshModel, out io.Writer) (err error) {
	var (
		rm *geometry2D.RectMesh
	)
	fmt.Fprintf(out, "Creating triangulation with %d x and %d y elements...\n",
		mm.Config.NumXElements, mm.Config.NumYElements)
	if rm, err = geometry2D.NewRectMesh(mm.Config); err != nil {
		return
	}
	records := triangulation.NewRecords(rm)
	if err = triangulation.WriteJSON(mm.OutputFile, records); err != nil {
		return
	}
	fmt.Fprintf(out, "Wrote %d triangles to %s\n", len(records), mm.OutputFile)
	if len(mm.SU2File) != 0 {
		if err = readfiles.WriteSU2File(mm.SU2File, rm); err != nil {
			return
		}
		fmt.Fprintf(out, "Wrote SU2 mesh to %s\n", mm.SU2File)
	}
	if len(mm.GeoJSONFile) != 0 {
		if err = triangulation.WriteGeoJSON(mm.GeoJSONFile, records); err != nil {
			return
		}
		fmt.Fprintf(out, "Wrote GeoJSON to %s\n", mm.GeoJSONFile)
	}
	if len(mm.PNGFile) != 0 {
		if err = graphics.SavePNG(mm.PNGFile, rm, graphics.DefaultPNGOptions()); err != nil {
			return fmt.Errorf("rendering %s: %w", mm.PNGFile, err)
		}
		fmt.Fprintf(out, "Wrote plot to %s\n", mm.PNGFile)
	}
	if mm.Stats {
		st := geometry2D.ComputeStats(rm)
		st.Print(out)
		if !st.AreaIsConsistent(rm, float64(st.NumTriangles)*utils.NODETOL) {
			fmt.Fprintf(out, "warning: triangle areas sum to %g\n", st.TotalArea)
		}
	}
	if mm.TUI {
		if err = graphics.RunTerminal(rm); err != nil {
			return
		}
	}
	if mm.Graph {
		fmt.Fprintln(out, "Plotting mesh, interrupt to exit")
		graphics.PlotMesh(ctx, rm, graphics.DefaultChartOptions())
	}
	return
}
