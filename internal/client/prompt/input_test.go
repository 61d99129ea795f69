package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	oldTTY, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTTY, oldRead })
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
}

func TestText(t *testing.T) {
	var out bytes.Buffer
	got, err := Text(rdr("  alice@example.com \n"), "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)
	assert.Equal(t, "Email: ", out.String())
}

func TestText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := Text(rdr("lastline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = Text(rdr(""), "Name", &out)
	require.Error(t, err)
}

func TestPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("hunter2"), nil)

	var out bytes.Buffer
	pw, err := Password(rdr("ignored\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(pw))
	assert.Equal(t, "Password: \n", out.String())
}

func TestPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := Password(rdr(""), "Password", &out)
	require.Error(t, err)
}

func TestPassword_Piped(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	pw, err := Password(rdr("from-pipe\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "from-pipe", string(pw))
}
