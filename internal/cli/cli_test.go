package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosar-arxml/internal/types"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"validate", "format", "inspect", "find", "order", "init"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	flags := []string{"config", "log-level", "collect-errors", "schema-support", "merge-action"}
	for _, name := range flags {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestFormatCommandFlags(t *testing.T) {
	cmd := newFormatCommand()
	assert.NotNil(t, cmd.Flags().Lookup("check"))
	assert.NotNil(t, cmd.Flags().Lookup("strict"))
}

func TestInitCommandFlags(t *testing.T) {
	cmd := newInitCommand()
	flags := []string{"namespace-config", "namespace", "schema-version", "force"}
	for _, name := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestFindCommandDefaultsToWorkingDirectory(t *testing.T) {
	cmd := newFindCommand()
	flag := cmd.Flags().Lookup("in")
	require.NotNil(t, flag)
	assert.Equal(t, "[.]", flag.DefValue)
}

// ---------- End-to-end command tests ----------

func fixtureDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, "..", "..", "fixtures", "arxml")
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestValidateCommandOnFixtures(t *testing.T) {
	out, err := runRoot(t, "validate", fixtureDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "validated: 3 files")
}

func TestOrderCommandOnFixtures(t *testing.T) {
	out, err := runRoot(t, "order", fixtureDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "SW-BASE-TYPE /DataTypes/BaseTypes/uint8\n")
	assert.Less(t, bytes.Index([]byte(out), []byte("/Speed\n")), bytes.Index([]byte(out), []byte("/Alias\n")))
}

func TestFindCommandPrintsFragment(t *testing.T) {
	out, err := runRoot(t, "find", "/DataTypes/BaseTypes/uint8", "--in", fixtureDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "<SHORT-NAME>uint8</SHORT-NAME>")
}

func TestInspectCommandQuery(t *testing.T) {
	file := filepath.Join(fixtureDir(t), "datatypes.arxml")
	out, err := runRoot(t, "inspect", file, "--query", "element_count")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestFormatCheckReportsUnformattedFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "datatypes.arxml")
	data, err := os.ReadFile(filepath.Join(fixtureDir(t), "datatypes.arxml"))
	require.NoError(t, err)
	messy := append(append([]byte(nil), data...), "\n\n\n"...)
	require.NoError(t, os.WriteFile(file, messy, 0o644))

	_, err = runRoot(t, "format", "--check", dir)
	require.Error(t, err)
	assert.Equal(t, 3, exitCodeForError(err))

	unchanged, readErr := os.ReadFile(file)
	require.NoError(t, readErr)
	assert.Equal(t, messy, unchanged)
}

func TestInitCommandUsesConfigFileNamespaces(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "arxml.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`namespaces:
  vehicle:
    base: /Vehicle
    roles:
      BaseType: BaseTypes
      PortInterface: PortInterfaces
`), 0o644))
	output := filepath.Join(dir, "skeleton.arxml")

	out, err := runRoot(t, "--config", config, "init", output)
	require.NoError(t, err)
	assert.Contains(t, out, "/Vehicle/BaseTypes")
	assert.Contains(t, out, "/Vehicle/PortInterfaces")
	assert.FileExists(t, output)
}

func TestCanonicalRoles(t *testing.T) {
	got := canonicalRoles(map[types.PackageRole]string{
		"basetype":      "BaseTypes",
		"PORTINTERFACE": "PortInterfaces",
		"nonsense":      "Other",
	})
	assert.Equal(t, map[types.PackageRole]string{
		types.RoleBaseType:      "BaseTypes",
		types.RolePortInterface: "PortInterfaces",
		"nonsense":              "Other",
	}, got)
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStrings(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		values   []string
		expected []string
	}{
		{
			name:     "nil cmd with values returns values",
			cmd:      nil,
			values:   []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nil cmd empty returns nil",
			cmd:      nil,
			values:   nil,
			expected: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStrings(tt.cmd, tt.values, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBool(t *testing.T) {
	got := resolveBool(nil, true, "test_key", "test-flag")
	assert.True(t, got)

	got = resolveBool(nil, false, "test_key", "test-flag")
	assert.False(t, got)
}

func TestResolveInt(t *testing.T) {
	got := resolveInt(nil, 42, "test_key", "test-flag")
	assert.Equal(t, 42, got)
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "validation problems",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("validation found 2 problems in 1 files"),
			expected: 3,
		},
		{
			name: "format check",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("1 of 3 files are not formatted"),
			expected: 3,
		},
		{
			name: "generic failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("data types form a dependency cycle: /A, /B"),
			expected: 4,
		},
		{
			name: "permission denied",
			err: errbuilder.New().
				WithCode(errbuilder.CodePermissionDenied).
				WithMsg("nope"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no element at /A/B"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "errbuilder with msg",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("something broke"),
			expected: "something broke",
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			expected: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorMessage(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
