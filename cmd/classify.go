package main

import (
	"fmt"
	"os"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/api/handler/v1handler"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/classifier"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// classifyCommand constructs the 'classify' subcommand that prints the content
// kind and display details of a payload.
func classifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <payload>",
		Short: "Classifies a decoded payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("format")
			format := domain.ParseCodeFormat(name)

			kind := classifier.Classify(args[0], format)

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)
			v1handler.EncodeDetails(e, classifier.Describe(kind, args[0]))
			if _, err := fmt.Fprintln(os.Stdout, e.String()); err != nil {
				return fmt.Errorf("could not write details: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String("format", string(domain.FormatQR), "Symbology the payload was decoded from (QR, EAN13, UPC_A, CODE128, CODE39)")

	return cmd
}
