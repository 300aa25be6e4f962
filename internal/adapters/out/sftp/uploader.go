// Package sftp is the outbound adapter for the remote label archive,
// implemented over an SFTP session per upload.
package sftp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"path"
	"time"

	"fulfillment/internal/pkg/errs"

	sftpclient "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

const dialTimeout = 15 * time.Second

// Config carries the file-transfer endpoint and credentials.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
}

// Session is one live file-transfer connection. Created per upload and
// closed before the upload call returns, on every exit path.
type Session interface {
	Create(path string) (io.WriteCloser, error)
	Close() error
}

// Dialer opens a Session. The production dialer speaks SSH; tests inject a
// fake to observe that sessions are always released.
type Dialer interface {
	Dial(ctx context.Context) (Session, error)
}

// Uploader implements the ArchiveUploader port. Each call dials a fresh
// session, writes the file, and releases the session; connections are never
// reused across orders.
type Uploader struct {
	dialer    Dialer
	uploadDir string
	logger    *slog.Logger
}

// NewUploader creates an uploader writing into uploadDir on the remote store.
func NewUploader(dialer Dialer, uploadDir string, logger *slog.Logger) *Uploader {
	return &Uploader{
		dialer:    dialer,
		uploadDir: uploadDir,
		logger:    logger.With("component", "sftp_uploader"),
	}
}

// Upload writes content to {uploadDir}/{filename}, overwriting any existing
// file. Connection, authentication, and write failures come back as upload
// errors; anything unanticipated, including a panic mid-transfer, is
// converted to an unexpected error. The session is released regardless.
func (u *Uploader) Upload(ctx context.Context, filename string, content []byte) (err error) {
	remotePath := path.Join(u.uploadDir, filename)

	defer func() {
		if r := recover(); r != nil {
			err = errs.NewUnexpectedErrorWithCause(remotePath, fmt.Errorf("panic: %v", r))
		}
	}()

	session, err := u.dialer.Dial(ctx)
	if err != nil {
		return errs.NewUploadErrorWithCause(remotePath, err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = errs.NewUploadErrorWithCause(remotePath, closeErr)
		}
	}()

	file, err := session.Create(remotePath)
	if err != nil {
		return errs.NewUploadErrorWithCause(remotePath, err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return errs.NewUploadErrorWithCause(remotePath, err)
	}

	if err := file.Close(); err != nil {
		return errs.NewUploadErrorWithCause(remotePath, err)
	}

	u.logger.InfoContext(ctx, "Label uploaded", "remote_path", remotePath, "bytes", len(content))
	return nil
}

// sshDialer opens password-authenticated SFTP sessions over SSH.
type sshDialer struct {
	cfg Config
}

// NewSSHDialer creates the production dialer for the configured endpoint.
func NewSSHDialer(cfg Config) Dialer {
	return sshDialer{cfg: cfg}
}

func (d sshDialer) Dial(_ context.Context) (Session, error) {
	sshConfig := &ssh.ClientConfig{
		User:            d.cfg.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(d.cfg.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // host key pinning is a deployment concern
		Timeout:         dialTimeout,
	}

	conn, err := ssh.Dial("tcp", net.JoinHostPort(d.cfg.Host, d.cfg.Port), sshConfig)
	if err != nil {
		return nil, err
	}

	client, err := sftpclient.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &sshSession{conn: conn, client: client}, nil
}

// sshSession couples the SFTP client with its underlying SSH connection so
// both are torn down together.
type sshSession struct {
	conn   *ssh.Client
	client *sftpclient.Client
}

func (s *sshSession) Create(path string) (io.WriteCloser, error) {
	return s.client.Create(path)
}

func (s *sshSession) Close() error {
	clientErr := s.client.Close()
	connErr := s.conn.Close()
	if clientErr != nil {
		return clientErr
	}
	return connErr
}
