package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func convertCmd() *cobra.Command {
	var input, format string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print an almanac in the YAML format",
		RunE: func(cmd *cobra.Command, _ []string) error {
			alm, err := readAlmanac(input, format)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			err = enc.Encode(alm)
			if err != nil {
				return errors.Wrap(err, "unable to encode almanac")
			}

			return errors.Wrap(enc.Close(), "unable to flush almanac")
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "input.txt", "almanac file")
	cmd.Flags().StringVar(&format, "format", formatAuto, "input format: auto, text or yaml")

	return cmd
}
