// Package keactrl implements the client side of the Kea control channel:
// a JSON command/response protocol spoken over a local unix stream socket.
package keactrl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ResultSuccess is the result code Kea returns for a successful command.
const ResultSuccess = 0

// Commands used by the exporter.
const (
	CmdConfigGet       = "config-get"
	CmdStatisticGetAll = "statistic-get-all"
)

// Response is the generic Kea response envelope.
type Response struct {
	Result    int             `json:"result"`
	Text      string          `json:"text"`
	Arguments json.RawMessage `json:"arguments"`
}

// Err returns a *CommandError when the envelope reports a non-zero result.
func (r *Response) Err(command string) error {
	if r.Result == ResultSuccess {
		return nil
	}
	return &CommandError{Command: command, Result: r.Result, Text: r.Text}
}

// CommandError is a protocol-level failure reported by the Kea daemon.
type CommandError struct {
	Command string
	Result  int
	Text    string
}

func (e *CommandError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("kea command %s failed: result %d: %s", e.Command, e.Result, e.Text)
	}
	return fmt.Sprintf("kea command %s failed: result %d", e.Command, e.Result)
}

// Client sends commands to one Kea control socket. A fresh connection is
// made per command; Kea closes the stream after writing its response.
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient creates a client for the control socket at path.
func NewClient(path string, timeout time.Duration) *Client {
	return &Client{path: path, timeout: timeout}
}

// Path returns the control socket path.
func (c *Client) Path() string {
	return c.path
}

// Check verifies that the control socket exists and is a unix socket.
func (c *Client) Check() error {
	info, err := os.Stat(c.path)
	if err != nil {
		return errors.Wrapf(err, "control socket %s is not accessible, is Kea running", c.path)
	}
	if info.Mode()&os.ModeSocket == 0 {
		return errors.Errorf("control socket %s is not a unix socket", c.path)
	}
	return nil
}

// Exec sends a single command and decodes the response envelope. A non-zero
// result code is returned as a *CommandError.
func (c *Client) Exec(ctx context.Context, command string) (*Response, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to control socket %s", c.path)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, errors.Wrap(err, "setting control socket deadline")
	}

	request, err := json.Marshal(map[string]string{"command": command})
	if err != nil {
		return nil, errors.Wrapf(err, "encoding command %s", command)
	}
	if _, err := conn.Write(request); err != nil {
		return nil, errors.Wrapf(err, "sending command %s to %s", command, c.path)
	}

	// Kea closes the connection once the full response has been written.
	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s response from %s", command, c.path)
	}

	resp := &Response{}
	if err := json.Unmarshal(raw, resp); err != nil {
		return nil, errors.Wrapf(err, "parsing %s response from %s", command, c.path)
	}
	if err := resp.Err(command); err != nil {
		return nil, err
	}
	return resp, nil
}
