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
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gotrimesh",
	Short: "Uniform triangular meshes of the unit square",
	Long: `
Generates a uniform triangulation of the unit square, computes the area of
every triangle and writes the result to triangulation.json.

gotrimesh mesh -x 4 -y 3 --graph`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dir := viper.GetString("profile"); len(dir) != 0 {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree, stopping any CPU profile on every exit path
func execute(args []string) error {
	defer stopProfile()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gotrimesh.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a CPU profile to this directory")
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gotrimesh" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gotrimesh")
	}
	viper.SetEnvPrefix("GOTRIMESH")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
