// Package transport opens and drives the Unix domain socket a Wayland
// client speaks to its compositor over: a SOCK_SEQPACKET connection at
// $XDG_RUNTIME_DIR/$WAYLAND_DISPLAY, carrying message bytes and ancillary
// file descriptors (SCM_RIGHTS) side by side.
package transport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrNoRuntimeDir is returned when XDG_RUNTIME_DIR is unset, since there is
// nowhere to look for the compositor socket.
var ErrNoRuntimeDir = errors.New("transport: XDG_RUNTIME_DIR not set")

// ErrClosed is returned by Send/Recv once the socket has been closed.
var ErrClosed = errors.New("transport: socket closed")

// defaultDisplayName is used when WAYLAND_DISPLAY is unset.
const defaultDisplayName = "wayland-0"

// maxAncillaryFDs bounds how many file descriptors a single recvmsg call
// will accept; the control buffer is sized to match.
const maxAncillaryFDs = 28

// SocketPath resolves the path to the compositor socket from
// $XDG_RUNTIME_DIR and $WAYLAND_DISPLAY, following the same rule every
// Wayland client implementation does: an absolute WAYLAND_DISPLAY is used
// as-is, otherwise it is joined under XDG_RUNTIME_DIR, defaulting to
// "wayland-0" if unset.
func SocketPath() (string, error) {
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = defaultDisplayName
	}

	if filepath.IsAbs(display) {
		return display, nil
	}

	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return "", ErrNoRuntimeDir
	}
	return filepath.Join(runtimeDir, display), nil
}

// Socket is a connected SOCK_SEQPACKET Unix domain socket to a Wayland
// compositor. Each Send/Recv call carries exactly one datagram, matching
// the message-boundary semantics a seqpacket socket guarantees (no short
// reads splitting a message in two the way SOCK_STREAM would allow).
type Socket struct {
	fd     int
	closed bool
}

// Connect resolves the compositor socket path and connects to it.
func Connect() (*Socket, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	return ConnectTo(path)
}

// ConnectTo connects to the compositor socket at the given path.
func ConnectTo(path string) (*Socket, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_SEQPACKET, 0)
	if err != nil {
		return nil, fmt.Errorf("transport: socket: %w", err)
	}

	addr := &unix.SockaddrUnix{Name: path}
	if err := unix.Connect(fd, addr); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("transport: connect %s: %w", path, err)
	}

	return &Socket{fd: fd}, nil
}

// Fd returns the underlying file descriptor, for use with poll/epoll-based
// event loops.
func (s *Socket) Fd() int { return s.fd }

// Close closes the socket. It is safe to call more than once.
func (s *Socket) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return unix.Close(s.fd)
}

// Send writes one message, with zero or more file descriptors carried as
// ancillary SCM_RIGHTS data. EINTR is retried transparently.
func (s *Socket) Send(data []byte, fds []int) error {
	if s.closed {
		return ErrClosed
	}

	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}

	for {
		err := unix.Sendmsg(s.fd, data, oob, nil, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("transport: sendmsg: %w", err)
		}
		return nil
	}
}

// Recv reads one message into buf, returning the number of bytes read and
// any file descriptors delivered alongside it. EINTR is retried
// transparently.
func (s *Socket) Recv(buf []byte) (n int, fds []int, err error) {
	if s.closed {
		return 0, nil, ErrClosed
	}

	oob := make([]byte, unix.CmsgSpace(maxAncillaryFDs*4))
	for {
		n, oobn, _, _, err := unix.Recvmsg(s.fd, buf, oob, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, nil, fmt.Errorf("transport: recvmsg: %w", err)
		}
		if n == 0 && oobn == 0 {
			return 0, nil, ErrClosed
		}
		fds, err := parseFileDescriptors(oob[:oobn])
		if err != nil {
			return 0, nil, err
		}
		return n, fds, nil
	}
}

// parseFileDescriptors extracts any SCM_RIGHTS file descriptors carried in
// an ancillary data buffer returned by recvmsg.
func parseFileDescriptors(oob []byte) ([]int, error) {
	if len(oob) == 0 {
		return nil, nil
	}

	messages, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, fmt.Errorf("transport: parse control message: %w", err)
	}

	var fds []int
	for _, msg := range messages {
		parsed, err := unix.ParseUnixRights(&msg)
		if err != nil {
			return nil, fmt.Errorf("transport: parse unix rights: %w", err)
		}
		fds = append(fds, parsed...)
	}
	return fds, nil
}
