package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/powerfang/internal/config"
	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/render"
)

const (
	formatCmdUse   = "format <tree.json|tree.yaml|->"
	formatCmdShort = "Render a serialized syntax tree as canonical PowerShell source"
	formatArgCount = 1
	outputFilePerm = 0o644
)

// ErrAmbiguousFormat is returned when the input format cannot be determined
// from the file extension.
var ErrAmbiguousFormat = errors.New("cannot determine input format; use --input-format")

type formatOptions struct {
	configPath  string
	inputFormat string
	outputPath  string
	diffPath    string
	validate    bool
}

// NewFormatCommand creates the format subcommand.
func NewFormatCommand() *cobra.Command {
	var opts formatOptions

	cmd := &cobra.Command{
		Use:   formatCmdUse,
		Short: formatCmdShort,
		Long: `Render a serialized PowerShell syntax tree as canonical source text.

The tree is read as a JSON or YAML document, decoded and printed in the
canonical layout: Allman braces, four-space indents and normalized
operator spacing.

Examples:
  powerfang format tree.json
  powerfang format - < tree.json
  powerfang format --validate --output out.ps1 tree.yaml
  powerfang format --diff original.ps1 tree.json`,
		Args: cobra.ExactArgs(formatArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFormat(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "input format: json or yaml (default: by extension)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.diffPath, "diff", "", "diff the rendered source against this file")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "validate the document against the tree schema first")

	return cmd
}

func runFormat(inputPath string, opts formatOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	applyColorMode(cfg.Output.Color)

	logger := config.NewLogger(cfg.Logging)

	data, label, err := readInput(inputPath)
	if err != nil {
		return err
	}

	logger.Debug("read tree document",
		slog.String("source", label),
		slog.String("size", humanize.Bytes(uint64(len(data)))))

	format, err := resolveFormat(inputPath, opts.inputFormat, cfg.Input.Format)
	if err != nil {
		return err
	}

	if (opts.validate || cfg.Input.Validate) && format == "json" {
		if err := psast.ValidateDocument(data); err != nil {
			return err
		}

		logger.Debug("document passed schema validation")
	}

	source, err := decodeAndRender(data, format)
	if err != nil {
		return err
	}

	if err := writeOutput(source, opts.outputPath, cfg.Output.Path); err != nil {
		return err
	}

	if opts.diffPath != "" {
		return printDiff(opts.diffPath, source)
	}

	return nil
}

func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false //nolint:reassign // intentional override of library global
	case "never":
		color.NoColor = true //nolint:reassign // intentional override of library global
	}
}

func readInput(inputPath string) ([]byte, string, error) {
	if inputPath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return data, "stdin", nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}

	return data, inputPath, nil
}

// resolveFormat picks the document codec: the flag wins, then the file
// extension, then the configured default.
func resolveFormat(inputPath, flagFormat, configFormat string) (string, error) {
	if flagFormat != "" {
		return flagFormat, nil
	}

	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}

	if configFormat != "" && configFormat != "auto" {
		return configFormat, nil
	}

	if inputPath == "-" {
		// Stdin defaults to JSON, the format parsers emit.
		return "json", nil
	}

	return "", fmt.Errorf("%w: %s", ErrAmbiguousFormat, inputPath)
}

func decodeAndRender(data []byte, format string) (string, error) {
	var (
		node psast.Node
		err  error
	)

	if format == "yaml" {
		node, err = psast.DecodeYAML(data)
	} else {
		node, err = psast.DecodeJSON(data)
	}

	if err != nil {
		return "", err
	}

	return renderNode(node)
}

func renderNode(node psast.Node) (string, error) {
	switch typed := node.(type) {
	case *psast.UsingDirective:
		return render.UsingDirective(typed)
	case psast.Statement:
		return render.Statement(typed)
	case psast.Expression:
		return render.Expression(typed)
	default:
		return "", fmt.Errorf("%w: %T at top level", render.ErrUnsupportedConstruct, node)
	}
}

func writeOutput(source, flagPath, configPath string) error {
	outputPath := flagPath
	if outputPath == "" {
		outputPath = configPath
	}

	if outputPath == "" || outputPath == "-" {
		_, err := io.WriteString(os.Stdout, source)

		return err
	}

	if err := os.WriteFile(outputPath, []byte(source), outputFilePerm); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// printDiff shows how the rendered source differs from an original file,
// deletions in red and insertions in green.
func printDiff(originalPath, rendered string) error {
	original, err := os.ReadFile(originalPath)
	if err != nil {
		return fmt.Errorf("read diff target: %w", err)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(original), rendered, false))

	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		color.New(color.FgGreen).Fprintln(os.Stderr, "rendered source matches original")

		return nil
	}

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			color.New(color.FgRed).Fprint(os.Stderr, diff.Text)
		case diffmatchpatch.DiffInsert:
			color.New(color.FgGreen).Fprint(os.Stderr, diff.Text)
		case diffmatchpatch.DiffEqual:
			fmt.Fprint(os.Stderr, diff.Text)
		}
	}

	fmt.Fprintln(os.Stderr)

	return nil
}
