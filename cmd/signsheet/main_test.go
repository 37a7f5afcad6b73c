package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/signsheet-go/pkg/signsheet"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/render"
)

const members = "First Name,Last Name,Member\nGrace,Hopper,Y\nAda,Lovelace,N\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "members.csv", members)
	out := filepath.Join(dir, "out")

	stdout, stderr, err := execute(t, "-i", input, "-e", "Fall Social", "-d", "Oct 16", "-n", "2", "-o", out, "--xlsx")
	require.NoError(t, err)

	pdfPath := filepath.Join(out, signsheet.DefaultOutputName)
	assert.Equal(t, pdfPath+"\n"+filepath.Join(out, "acm_sign_in.xlsx")+"\n", stdout)
	assert.Contains(t, stderr, "sign-in sheet written")

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	n, err := render.PageCount(data)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRootCmdConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "members.csv", members)
	out := filepath.Join(dir, "out")
	cfg := writeFile(t, dir, "signsheet.yaml", `
non_member_pages: 5
output_dir: `+filepath.Join(dir, "ignored")+`
filter: Member == "Y"
logging:
  format: json
`)

	stdout, stderr, err := execute(t, "-i", input, "-c", cfg, "-o", out, "--debug")
	require.NoError(t, err)

	// -o wins over output_dir.
	assert.Equal(t, filepath.Join(out, signsheet.DefaultOutputName)+"\n", stdout)
	assert.NoDirExists(t, filepath.Join(dir, "ignored"))

	assert.True(t, strings.HasPrefix(strings.TrimSpace(stderr), "{"), "json log lines")
	assert.Contains(t, stderr, `"level":"debug"`)
	assert.Contains(t, stderr, `"records":1`)
	assert.Contains(t, stderr, `"supplementalPages":5`)
}

func TestRootCmdErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "members.csv", members)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing input flag", nil, `required flag(s) "input" not set`},
		{"wrong extension", []string{"-i", writeFile(t, dir, "members.txt", members)}, "members.txt is not a valid csv file"},
		{"missing sort column", []string{"-i", input, "-s", "Email"}, `columns "Email" not in datafile`},
		{"negative pages", []string{"-i", input, "-n", "-1"}, "non-member must be >= 0"},
		{"zero font", []string{"-i", input, "--cell-font", "0"}, "cell-font must be > 0"},
		{"bad config", []string{"-i", input, "-c", filepath.Join(dir, "absent.yaml")}, "reading config file"},
		{"stray argument", []string{"-i", input, "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out")
			args := append(tt.args, "-o", out)

			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.NoDirExists(t, out)
		})
	}
}
