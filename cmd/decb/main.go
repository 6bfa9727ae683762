// file: cmd/decb/main.go

package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tch80/decb/cmd/delete"
	"github.com/tch80/decb/cmd/detok"
	"github.com/tch80/decb/cmd/extract"
	"github.com/tch80/decb/cmd/format"
	"github.com/tch80/decb/cmd/info"
	"github.com/tch80/decb/cmd/insert"
	"github.com/tch80/decb/cmd/list"
	"github.com/tch80/decb/cmd/rename"
)

// The package initializer sets up logging based on logrus. The following
// environment variables can be used to configure logging:
//
//	LOG_FORMAT		set to `json` for JSON logging
//	LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
//	LOG_LEVEL		`panic`, `fatal`, `error`, `warn`, `info`, `debug`, `trace`
func init() {
	log.SetOutput(os.Stdout)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if strings.ToLower(os.Getenv("LOG_FORCE_COLORS")) != "" {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			log.Errorf("invalid log level: %q", level)
		} else {
			log.SetLevel(l)
		}
	}
}

func dieOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	viper.SetEnvPrefix("DECB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	root := &cobra.Command{
		Use:   "decb",
		Short: "Mount, inspect, and edit TRS-80 Color Computer DECB disk images",
	}

	root.AddCommand(
		newListCmd(),
		newExtractCmd(),
		newInsertCmd(),
		newDeleteCmd(),
		newRenameCmd(),
		newFormatCmd(),
		newInfoCmd(),
		newDetokCmd(),
	)

	dieOnError(root.Execute())
}

func newListCmd() *cobra.Command {
	opts := list.DefaultListOptions()
	cmd := &cobra.Command{
		Use:   "list <image>",
		Short: "List the directory of a DECB image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.JSON = viper.GetBool("list.json")
			return list.List(args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", opts.JSON, "output as JSON")
	cmd.Flags().StringVar(&opts.Sort, "sort", opts.Sort, "sort order: name, size, type")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", opts.Reverse, "reverse sort order")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", opts.Pattern, "glob filter on filename")

	viper.BindPFlag("list.json", cmd.Flags().Lookup("json"))

	return cmd
}

func newExtractCmd() *cobra.Command {
	opts := extract.DefaultExtractOptions()
	var all bool
	cmd := &cobra.Command{
		Use:   "extract <image> [name]",
		Short: "Extract one or all files from a DECB image",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all || len(args) == 1 {
				return extract.ExtractAll(args[0], opts)
			}
			return extract.Extract(args[0], args[1], opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "out", opts.OutputDir, "output directory")
	cmd.Flags().BoolVar(&opts.Overwrite, "force", opts.Overwrite, "overwrite existing output files")
	cmd.Flags().BoolVar(&all, "all", false, "extract every entry")
	return cmd
}

func newInsertCmd() *cobra.Command {
	opts := insert.DefaultInsertOptions()
	cmd := &cobra.Command{
		Use:   "insert <image> <file>",
		Short: "Insert a host file into a DECB image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return insert.Insert(args[0], args[1], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", opts.Name, "destination name (defaults to the host basename)")
	cmd.Flags().BoolVar(&opts.Force, "force", opts.Force, "overwrite an existing entry")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	opts := delete.DefaultDeleteOptions()
	cmd := &cobra.Command{
		Use:   "delete <image> <name>",
		Short: "Delete a file from a DECB image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return delete.Delete(args[0], args[1], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", opts.Force, "skip confirmation")
	return cmd
}

func newRenameCmd() *cobra.Command {
	opts := rename.DefaultRenameOptions()
	cmd := &cobra.Command{
		Use:   "rename <image> <old> <new>",
		Short: "Rename a directory entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rename.Rename(args[0], args[1], args[2], opts)
		},
	}
	return cmd
}

func newFormatCmd() *cobra.Command {
	opts := format.DefaultFormatOptions()
	cmd := &cobra.Command{
		Use:   "format <image>",
		Short: "Create a blank DECB disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags bound through viper resolve flag > DECB_FORMAT_* env
			// var > default, so a fleet of images can share geometry
			// presets without repeating flags on every invocation.
			opts.Tracks = viper.GetInt("format.tracks")
			opts.Sides = viper.GetInt("format.sides")
			opts.JVCHeader = viper.GetBool("format.jvc-header")
			return format.Format(args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.Tracks, "tracks", opts.Tracks, "track count")
	cmd.Flags().IntVar(&opts.Sides, "sides", opts.Sides, "side count")
	cmd.Flags().BoolVar(&opts.JVCHeader, "jvc-header", opts.JVCHeader, "write the optional 5-byte JVC header")
	cmd.Flags().BoolVar(&opts.Force, "force", opts.Force, "overwrite an existing file")

	viper.BindPFlag("format.tracks", cmd.Flags().Lookup("tracks"))
	viper.BindPFlag("format.sides", cmd.Flags().Lookup("sides"))
	viper.BindPFlag("format.jvc-header", cmd.Flags().Lookup("jvc-header"))

	return cmd
}

func newInfoCmd() *cobra.Command {
	opts := info.DefaultInfoOptions()
	cmd := &cobra.Command{
		Use:   "info <image>",
		Short: "Show summary information and run consistency checks on a DECB image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.JSON = viper.GetBool("info.json")
			return info.Info(args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", opts.JSON, "output as JSON")
	cmd.Flags().BoolVar(&opts.Validate, "validate", opts.Validate, "run consistency checks")

	viper.BindPFlag("info.json", cmd.Flags().Lookup("json"))

	return cmd
}

func newDetokCmd() *cobra.Command {
	opts := detok.DefaultDetokOptions()
	cmd := &cobra.Command{
		Use:   "detok <file.bas>",
		Short: "Detokenize a BASIC program into text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return detok.Detok(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputPath, "out", opts.OutputPath, "output path (defaults to replacing the extension with .txt)")
	cmd.Flags().BoolVar(&opts.Force, "force", opts.Force, "overwrite an existing output file")
	return cmd
}
