package commands_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuy/jsonbox-go/cmd/jsonbox/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func TestNewRootCommand(t *testing.T) {
	cmd := commands.NewRootCommand("1.0.0", "abc123", "2026-10-15")
	assert.Equal(t, "jsonbox", cmd.Use)

	for _, name := range []string{"create", "get", "list", "update", "delete", "query", "config", "version"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}

	for _, name := range []string{"config", "box", "endpoint", "output", "timeout", "verbose", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s should exist", name)
	}

	assert.Equal(t, "https://jsonbox.io", cmd.PersistentFlags().Lookup("endpoint").DefValue)
	assert.Equal(t, "table", cmd.PersistentFlags().Lookup("output").DefValue)
	assert.Equal(t, "30s", cmd.PersistentFlags().Lookup("timeout").DefValue)
}

func TestCreateCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCreateCommand()
	assert.Equal(t, "create [JSON]", cmd.Use)
	assert.Equal(t, "Create records", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	bulkFlag := cmd.Flags().Lookup("bulk")
	require.NotNil(t, bulkFlag)
	assert.Equal(t, "false", bulkFlag.DefValue)
}

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewGetCommand()
	assert.Equal(t, "get RECORD_ID", cmd.Use)
	assert.Equal(t, "Get a record", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	require.Error(t, cmd.Args(cmd, []string{}))
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, []string{"ls"}, cmd.Aliases)

	flags := []string{"sort", "desc", "skip", "limit", "filter", "all"}
	for _, flagName := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	assert.Equal(t, "20", cmd.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "0", cmd.Flags().Lookup("skip").DefValue)
}

func TestUpdateCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewUpdateCommand()
	assert.Equal(t, "update RECORD_ID [JSON]", cmd.Use)
	assert.Equal(t, "Replace a record", cmd.Short)
	require.Error(t, cmd.Args(cmd, []string{}))
	require.NoError(t, cmd.Args(cmd, []string{"id", "{}"}))
	require.Error(t, cmd.Args(cmd, []string{"id", "{}", "extra"}))
}

func TestDeleteCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewDeleteCommand()
	assert.Equal(t, "delete RECORD_ID", cmd.Use)
	assert.Equal(t, "Delete a record", cmd.Short)

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
}

func TestDeleteCommand_Cancelled(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := commands.NewDeleteCommand()
	cmd.SetIn(bytes.NewBufferString("n\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"5d876d852a780700177c0557"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Really delete record '5d876d852a780700177c0557'? (y/N): ")
	assert.Contains(t, out.String(), "Cancelled")
}

func TestQueryCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "defaults",
			args:     []string{},
			expected: "sort=-_createdOn&skip=0&limit=20\n",
		},
		{
			name: "full",
			args: []string{
				"--sort", "count", "--desc", "--skip", "8", "--limit", "42",
				"--filter", "count:>{}=20", "--filter", "count:<{}=40",
			},
			expected: "sort=-count&skip=8&limit=42&q=count:>20,count:<40\n",
		},
		{
			name:     "value is encoded",
			args:     []string{"--sort", "name", "--filter", "name:{}=foo bar"},
			expected: "sort=name&skip=0&limit=20&q=name:foo%20bar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			cmd := commands.NewQueryCommand()
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestQueryCommand_InvalidFilter(t *testing.T) {
	t.Parallel()

	cmd := commands.NewQueryCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--filter", "name=kuy"})

	err := cmd.Execute()
	require.ErrorIs(t, err, commands.ErrInvalidFilter)
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.NotNil(t, findSubcommand(cmd, "show"))
	assert.NotNil(t, findSubcommand(cmd, "set"))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.0.0", "abc123", "2026-10-15")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}
