package main

import (
	"github.com/lshigami/admission/internal/wizard"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print everything entered so far",
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := wizard.NewPreview(a.api, a.sess).Load(cmd.Context())
			if err != nil {
				return err
			}
			return a.printYAML(merged)
		},
	}
}
