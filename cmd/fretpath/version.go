package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Build metadata, overridable with -ldflags "-X main.version=...".
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

var versionColor = color.New(color.FgGreen, color.Bold)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show fretpath build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		info := collectVersionInfo()

		switch strings.ToLower(format) {
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), info)
			return nil
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), info)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type versionInfo struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

func collectVersionInfo() versionInfo {
	info := versionInfo{
		Tool:      "fretpath",
		Version:   strings.TrimSpace(version),
		GitCommit: strings.TrimSpace(gitCommit),
		BuildDate: strings.TrimSpace(buildDate),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.GitCommit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.GitCommit = s.Value
				}
			}
		}
	}
	return info
}

func renderVersionPretty(out io.Writer, info versionInfo) {
	fmt.Fprintf(out, "%s %s\n", info.Tool, versionColor.Sprint(info.Version))
	if info.GitCommit != "" {
		fmt.Fprintf(out, "commit: %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "built:  %s\n", info.BuildDate)
	}
	if info.GoVersion != "" {
		fmt.Fprintf(out, "go:     %s\n", info.GoVersion)
	}
}

func renderVersionJSON(out io.Writer, info versionInfo) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
