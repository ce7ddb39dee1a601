package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/platform/envutil"
)

type globalOptions struct {
	jsonOutput bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "workhubctl",
		Short:         "Inspect a WorkHub deployment from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of tables")

	root.AddCommand(newSummaryCommand(opts))
	root.AddCommand(newPlaceholdersCommand(opts))
	return root
}

type apiOptions struct {
	baseURL  string
	username string
	password string
	token    string
	timeout  time.Duration
}

func (o *apiOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.baseURL, "api", envutil.String("WORKHUB_API", "http://localhost:8080"), "WorkHub API base URL")
	f.StringVar(&o.username, "username", envutil.String("WORKHUB_USERNAME", ""), "account used to sign in")
	f.StringVar(&o.password, "password", envutil.String("WORKHUB_PASSWORD", ""), "password for --username")
	f.StringVar(&o.token, "token", envutil.String("WORKHUB_TOKEN", ""), "existing access token; skips sign-in")
	f.DurationVar(&o.timeout, "timeout", 30*time.Second, "overall deadline")
}
