package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/calyx/internal/maincmd"
)

func TestRunStdin(t *testing.T) {
	cases := []struct {
		desc string
		in   string
		want string
	}{
		{"return", `return 42`, "Return(Int(42))\n"},
		{"none", `let a = 1`, "None\n"},
		{"break", `break`, "Break\n"},
		{"prints interleave", `println("hi"); return 1`, "hi\nReturn(Int(1))\n"},
		// a parse error still completes the cycle, the command succeeds
		{"parse error", `!&*`, "Error(\"Unable to parse program source\")\n"},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{
				Stdin:  strings.NewReader(c.in),
				Stdout: &buf,
				Stderr: &ebuf,
			}

			err := maincmd.RunFiles(context.Background(), stdio)
			require.NoError(t, err)
			require.Equal(t, c.want, buf.String())
			require.Empty(t, ebuf.String())
		})
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prog.cal")
	require.NoError(t, os.WriteFile(file, []byte(`fn f(a) { return a * 2; }; return f(21);`), 0600))

	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{
		Stdout: &buf,
		Stderr: &ebuf,
	}

	err := maincmd.RunFiles(context.Background(), stdio, file)
	require.NoError(t, err)
	require.Equal(t, "Return(Int(42))\n", buf.String())
}

func TestRunMissingFile(t *testing.T) {
	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{
		Stdout: &buf,
		Stderr: &ebuf,
	}

	err := maincmd.RunFiles(context.Background(), stdio, filepath.Join(t.TempDir(), "nope.cal"))
	require.Error(t, err)
	require.NotEmpty(t, ebuf.String())
}
