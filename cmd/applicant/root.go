package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lshigami/admission/config"
	"github.com/lshigami/admission/internal/client"
	"github.com/lshigami/admission/internal/logger"
	"github.com/lshigami/admission/internal/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// app is what every subcommand works with once the root has run.
type app struct {
	cfg  *config.ClientConfig
	sess *session.Session
	api  *client.Client
	out  io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		apiURL      string
		sessionFile string
		timeout     time.Duration
		logLevel    string
	)

	root := &cobra.Command{
		Use:           "applicant",
		Short:         "Fill in the admission application from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.NewClientConfig()
			flags := cmd.Flags()
			if flags.Changed("api") {
				a.cfg.APIBaseURL = apiURL
			}
			if flags.Changed("session") {
				a.cfg.SessionFile = sessionFile
			}
			if flags.Changed("timeout") {
				a.cfg.Timeout = timeout
			}
			if flags.Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}
			logger.SetLevel(a.cfg.LogLevel)

			sess, err := session.Load(a.cfg.SessionFile)
			if err != nil {
				return err
			}
			a.sess = sess
			a.api, err = client.New(a.cfg.APIBaseURL, sess, a.cfg.Timeout)
			if err != nil {
				return err
			}
			a.out = cmd.OutOrStdout()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&apiURL, "api", "", "API base URL (ADMISSION_API_URL)")
	pf.StringVar(&sessionFile, "session", "", "session file (ADMISSION_SESSION_FILE)")
	pf.DurationVar(&timeout, "timeout", 0, "HTTP timeout, 0 for none (ADMISSION_TIMEOUT)")
	pf.StringVar(&logLevel, "log-level", "", "log level (LOG_LEVEL)")

	root.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newProfileCmd(a),
		newPage3Cmd(a),
		newDocumentsCmd(a),
		newPreviewCmd(a),
	)
	return root
}

func (a *app) printYAML(v interface{}) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return enc.Close()
}
