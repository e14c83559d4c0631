package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

const (
	tokensCmdUse   = "tokens"
	tokensCmdShort = "List every token kind with its canonical spelling"
)

// NewTokensCommand creates the tokens subcommand.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   tokensCmdUse,
		Short: tokensCmdShort,
		Run: func(_ *cobra.Command, _ []string) {
			printTokenTable()
		},
	}
}

func printTokenTable() {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Name", "Lexeme"})

	kinds := pstoken.All()

	for _, kind := range kinds {
		lexeme, err := pstoken.Lexeme(kind)
		if err != nil {
			continue
		}

		tbl.AppendRow(table.Row{kind.Name(), lexeme})
	}

	tbl.Render()
}
