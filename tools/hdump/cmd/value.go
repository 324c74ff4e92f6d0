package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-mime/headerparams/param"
	_ "github.com/go-mime/headerparams/param/encoding"
)

var (
	delims string
	lower  bool
)

var valueCmd = &cobra.Command{
	Use:   "value header-value",
	Short: "Parse a header value and print its parameters one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  RunValue,
}

func init() {
	valueCmd.Flags().StringVar(&delims, "delims", ";", "characters that separate parameters")
	valueCmd.Flags().BoolVar(&lower, "lower", false, "fold parameter names to lower case")
	rootCmd.AddCommand(valueCmd)
}

func RunValue(cmd *cobra.Command, args []string) error {
	p := param.Parser{LowerCaseNames: lower}
	ps, err := p.Parse(args[0], []rune(delims)...)
	if err != nil {
		return err
	}

	for _, pm := range ps.Params() {
		if pm.HasValue {
			fmt.Printf("%s=%s\n", pm.Name, pm.Value)
		} else {
			fmt.Println(pm.Name)
		}
	}
	return nil
}
