// Package bar signals the running status-bar process.
package bar

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"syscall"
)

// Client addresses the bar process by executable name.
type Client struct {
	process string
}

// New creates a client for the named bar process.
func New(process string) *Client {
	if process == "" {
		process = "waybar"
	}
	return &Client{process: process}
}

// Process returns the bar process name.
func (c *Client) Process() string {
	return c.process
}

// Reload asks every running instance to reread its configuration via
// SIGUSR2. Fire-and-forget: no running instance is not an error.
func (c *Client) Reload() error {
	return c.signal("-SIGUSR2")
}

// Kill terminates every running instance.
func (c *Client) Kill() error {
	return c.signal("-SIGTERM")
}

// signal runs pkill with an exact name match. pkill exits 1 when nothing
// matched, which callers treat as success.
func (c *Client) signal(sig string) error {
	cmd := exec.Command("pkill", sig, "-x", c.process)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil // no process matched
		}
		return fmt.Errorf("pkill %s: %w", c.process, err)
	}
	return nil
}

// Running reports whether at least one instance of the bar is alive.
func (c *Client) Running() bool {
	cmd := exec.Command("pgrep", "-x", c.process)
	return cmd.Run() == nil
}

// Start spawns a detached bar instance in its own session so it survives
// this process exiting.
func (c *Client) Start() error {
	cmd := exec.Command(c.process)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.process, err)
	}
	// Detach; the bar is supervised by liveness polling, not by wait.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release %s: %w", c.process, err)
	}
	return nil
}

// Restart kills any running instance and spawns a fresh one.
func (c *Client) Restart() error {
	if err := c.Kill(); err != nil {
		slog.Warn("kill before restart failed", "process", c.process, "err", err)
	}
	return c.Start()
}
