package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/ebsight/pkg/services/config"
)

type ProfilesCmd struct {
	credentialsPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles from the AWS shared-credentials file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.credentialsPath, "credentials", "",
		"Path to the credentials file (default is $HOME/.aws/credentials)")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	path := pc.credentialsPath
	if path == "" {
		var err error
		path, err = config.DefaultCredentialsPath()
		if err != nil {
			return err
		}
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Available profiles:\n%s\n", strings.Join(profiles, "\n"))
	return nil
}
