/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/mshfmt/msh"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format [flags] mesh.msh",
	Short: "Reformat an MSH file with aligned columns and comments",
	Long: `
Reformat a Gmsh MSH file in place or into a new file. When formatting in
place the original is copied aside and restored if anything fails.

mshfmt format --precision 8 --node-comments 100 mesh.msh`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}

		cfg := formatConfigFromFlags(cmd)
		if show, _ := cmd.Flags().GetBool("show-config"); show {
			cfg.Print()
		}

		output, _ := cmd.Flags().GetString("output")
		if err := msh.FormatFile(args[0], output, cfg); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

// formatConfigFromFlags builds the effective FormatConfig: defaults, then
// the options file, then any explicitly set flags. An invalid combination
// exits before the input file is read.
func formatConfigFromFlags(cmd *cobra.Command) *msh.FormatConfig {
	cfg := msh.DefaultConfig()

	if optFile, _ := cmd.Flags().GetString("options"); optFile != "" {
		data, err := os.ReadFile(optFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = cfg.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision, _ = flags.GetInt("precision")
	}
	if flags.Changed("align") {
		cfg.AlignColumns, _ = flags.GetBool("align")
	}
	if flags.Changed("comments") {
		cfg.AddComments, _ = flags.GetBool("comments")
	}
	if flags.Changed("compact") {
		cfg.CompactMode, _ = flags.GetBool("compact")
	}
	if flags.Changed("scientific-threshold") {
		cfg.ScientificThreshold, _ = flags.GetFloat64("scientific-threshold")
	}
	if flags.Changed("column-width") {
		cfg.ColumnWidth, _ = flags.GetInt("column-width")
	}
	if flags.Changed("section-spacing") {
		cfg.SectionSpacing, _ = flags.GetInt("section-spacing")
	}
	if flags.Changed("node-comments") {
		cfg.NodeCommentFreq, _ = flags.GetInt("node-comments")
	}
	if flags.Changed("element-comments") {
		cfg.ElementCommentFreq, _ = flags.GetInt("element-comments")
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(formatCmd)
	addFormatFlags(formatCmd)
	formatCmd.Flags().StringP("output", "o", "", "output path (default: format in place with backup)")
	formatCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
	formatCmd.Flags().Bool("show-config", false, "print the effective formatting options")
}

// addFormatFlags registers the FormatConfig flags shared by the format and
// gen commands.
func addFormatFlags(cmd *cobra.Command) {
	def := msh.DefaultConfig()
	cmd.Flags().IntP("precision", "p", def.Precision, "decimal digits for floating point values")
	cmd.Flags().Bool("align", def.AlignColumns, "align numeric columns")
	cmd.Flags().Bool("comments", def.AddComments, "insert explanatory comments")
	cmd.Flags().Bool("compact", def.CompactMode, "suppress blank lines between sections")
	cmd.Flags().Float64("scientific-threshold", def.ScientificThreshold, "magnitudes below this use scientific notation")
	cmd.Flags().Int("column-width", def.ColumnWidth, "field width for aligned columns")
	cmd.Flags().Int("section-spacing", def.SectionSpacing, "blank lines between sections")
	cmd.Flags().Int("node-comments", def.NodeCommentFreq, "comment every N nodes (0 = disable)")
	cmd.Flags().Int("element-comments", def.ElementCommentFreq, "comment every N elements (0 = disable)")
	cmd.Flags().String("options", "", "YAML file of formatting options")
}
