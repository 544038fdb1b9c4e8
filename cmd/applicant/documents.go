package main

import (
	"fmt"
	"sort"

	"github.com/lshigami/admission/internal/upload"
	"github.com/lshigami/admission/internal/wizard"
	"github.com/spf13/cobra"
)

func newDocumentsCmd(a *app) *cobra.Command {
	paths := map[string]*string{}
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Upload the documents page",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := wizard.NewPage4(a.api, a.sess)
			if err := page.Mount(cmd.Context()); err != nil {
				return err
			}
			for _, target := range upload.DocumentTargets {
				path := *paths[target]
				if path == "" {
					continue
				}
				f, err := upload.OpenPath(path)
				if err != nil {
					return err
				}
				if err := page.Select(target, f); err != nil {
					return fmt.Errorf("%s: %w", target, err)
				}
			}
			step, urls, err := page.Submit(cmd.Context(), func(percent int) {
				fmt.Fprintf(a.out, "\rUploading... %3d%%", percent)
			})
			if err != nil {
				fmt.Fprintln(a.out)
				return err
			}
			fmt.Fprintln(a.out)
			fields := make([]string, 0, len(urls))
			for field := range urls {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(a.out, "%s: %s\n", field, urls[field])
			}
			fmt.Fprintf(a.out, "Next step: %s\n", step)
			return nil
		},
	}
	flagNames := map[string]string{
		upload.TargetPhoto:                "photo",
		upload.TargetSignature:            "signature",
		upload.TargetCommunityCertificate: "community",
		upload.TargetAadharCard:           "aadhar",
		upload.TargetTransferCertificate:  "transfer",
	}
	for _, target := range upload.DocumentTargets {
		paths[target] = cmd.Flags().String(flagNames[target], "", target+" file")
	}
	return cmd
}
