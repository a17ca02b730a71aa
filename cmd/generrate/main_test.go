package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestInflectCmd(t *testing.T) {
	out, err := run(t, "", "inflect", "--from", "NN", "--to", "NNS", "box", "Man")
	require.NoError(t, err)
	assert.Equal(t, "box\tboxes NNS\nMan\tMen NNS\n", out)
}

func TestInflectCmd_Declined(t *testing.T) {
	out, err := run(t, "", "inflect", "--from", "VBN", "--to", "VBZ", "need")
	require.NoError(t, err)
	assert.Equal(t, "need\t-\n", out)
}

func TestInflectCmd_NoRule(t *testing.T) {
	_, err := run(t, "", "inflect", "--from", "NN", "--to", "RB", "dog")
	require.Error(t, err)
}

func TestInjectCmd_Stdin(t *testing.T) {
	in := "the DT dog NN barks VBZ\nit PRP rains VBZ\n"
	out, err := run(t, in, "inject", "--source", "NN", "--target", "NNS", "-w", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"the DT dogs NNS barks VBZ\tthe DT dog NN barks VBZ\t"+
			`errortype="SubstWrongFormNNNNSError" details="dog/dogs at 2"`+"\n",
		out)
}

func TestInjectCmd_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("the DT cats NNS sleep VBP\n"), 0o644))

	out, err := run(t, "", "inject", "-i", path, "--source", "NNS", "--target", "NN", "--json")
	require.NoError(t, err)

	var got pairJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "the DT cat NN sleep VBP", got.Erroneous)
	assert.Equal(t, 2, got.Error.Position)
}

func TestInjectCmd_RequiresTags(t *testing.T) {
	_, err := run(t, "", "inject", "--source", "NN")
	require.Error(t, err)
}

func TestInjectCmd_MissingFile(t *testing.T) {
	_, err := run(t, "", "inject", "-i", filepath.Join(t.TempDir(), "none.txt"), "--source", "NN", "--target", "NNS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open sentences")
}
