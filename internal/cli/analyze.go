package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/nlplab/pkg/nlplab"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var asJSON, stripHTML bool

	cmd := &cobra.Command{
		Use:   "analyze <op> [text...]",
		Short: "Run one operation on text from the arguments or stdin",
		Example: `  nlplab analyze ner "Barack Obama was born in Hawaii"
  echo "running, mice" | nlplab analyze lemmatize`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if len(args) == 1 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = trimNewline(string(data))
			}

			res, err := app.Engine.Analyze(cmd.Context(), nlplab.Request{
				Op:        args[0],
				Text:      text,
				StripHTML: stripHTML,
			})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result envelope as JSON")
	cmd.Flags().BoolVar(&stripHTML, "html", false, "strip HTML markup from the input")
	return cmd
}

// trimNewline drops the single line terminator that echo and editors append
// to piped input. Other surrounding whitespace is part of the text.
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func writeResult(w io.Writer, res nlplab.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err := io.WriteString(w, Render(res))
	return err
}

// Render formats a result as its display card.
func Render(res nlplab.Result) string {
	return res.Card.String()
}
