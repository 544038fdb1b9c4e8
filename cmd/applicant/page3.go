package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/admission/internal/client"
	"github.com/lshigami/admission/internal/upload"
	"github.com/lshigami/admission/internal/wizard"
	"github.com/spf13/cobra"
)

func newPage3Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page3",
		Short: "Edit, check and submit the qualifications page through a YAML draft",
	}
	cmd.AddCommand(newPage3PullCmd(a), newPage3CheckCmd(a), newPage3UploadCmd(a), newPage3PushCmd(a))
	return cmd
}

func newPage3PullCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the saved page into a draft file",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := wizard.NewPage3(a.api, a.sess)
			if err := page.Mount(cmd.Context()); err != nil {
				return err
			}
			if err := writeDraft(out, page.Form().Snapshot()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Draft written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "page3.yaml", "draft file to write")
	return cmd
}

func newPage3CheckCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a draft without sending it",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := wizard.NewPage3(a.api, a.sess)
			if err := loadDraft(page, file); err != nil {
				return err
			}
			v := page.Form().ValidateAll()
			if v.IsValid {
				fmt.Fprintln(a.out, "Draft is valid")
				return nil
			}
			printErrors(a, v.Errors)
			return fmt.Errorf("%w (%d fields)", wizard.ErrInvalidForm, len(v.Errors))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "page3.yaml", "draft file")
	return cmd
}

func newPage3UploadCmd(a *app) *cobra.Command {
	var (
		file          string
		qualification int
		semester      bool
	)
	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a marksheet and record its URL in the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if semester == cmd.Flags().Changed("qualification") {
				return errors.New("pass exactly one of --qualification or --semester")
			}
			if a.sess.AuthToken() == "" {
				return errNotLoggedIn
			}
			page := wizard.NewPage3(a.api, a.sess)
			if err := loadDraft(page, file); err != nil {
				return err
			}
			f, err := upload.OpenPath(args[0])
			if err != nil {
				return err
			}

			var events <-chan upload.Event
			if semester {
				events, err = page.UploadSemesterMarksheet(cmd.Context(), f)
			} else {
				events, err = page.UploadMarksheet(cmd.Context(), qualification, f)
			}
			if err != nil {
				return err
			}
			if err := a.follow(cmd.Context(), events); err != nil {
				return a.authFailure(err)
			}
			return writeDraft(file, page.Form().Snapshot())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "page3.yaml", "draft file")
	cmd.Flags().IntVar(&qualification, "qualification", 0, "qualification index: 0 S.S.L.C, 1 HSC, 2+ additional")
	cmd.Flags().BoolVar(&semester, "semester", false, "upload the semester marksheet")
	return cmd
}

// follow prints progress until the final event.
func (a *app) follow(ctx context.Context, events <-chan upload.Event) error {
	for ev := range events {
		switch {
		case ev.Err != nil:
			fmt.Fprintln(a.out)
			return ev.Err
		case ev.Done:
			fmt.Fprintf(a.out, "\rUploaded: %s\n", ev.URL)
			return nil
		default:
			fmt.Fprintf(a.out, "\rUploading... %3d%%", ev.Progress)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.New("upload ended without a result")
}

func newPage3PushCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Submit a draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := wizard.NewPage3(a.api, a.sess)
			if err := loadDraft(page, file); err != nil {
				return err
			}
			step, err := page.Submit(cmd.Context())
			if err != nil {
				var verr *client.ValidationError
				if errors.Is(err, wizard.ErrInvalidForm) || errors.As(err, &verr) {
					printErrors(a, page.Form().Validation().Errors)
				}
				return err
			}
			fmt.Fprintf(a.out, "Saved. Next step: %s\n", step)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "page3.yaml", "draft file")
	return cmd
}
