package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/bloopai/bloop-tui/internal/logging"
)

// ErrLinkCopied is returned when no browser could be started and the URL
// was copied to the clipboard instead.
var ErrLinkCopied = errors.New("no browser available, link copied to clipboard")

// Browser opens links with the operating system's URL handler.
type Browser struct {
	// start runs the platform opener; replaced in tests
	start func(url string) error
	// copy writes to the clipboard; replaced in tests
	copy func(text string) error
}

// NewBrowser returns a Browser for the current OS.
func NewBrowser() *Browser {
	return &Browser{
		start: startOpener,
		copy:  clipboard.WriteAll,
	}
}

// OpenLink opens url. If the opener fails the URL is copied to the
// clipboard and ErrLinkCopied is returned so the user can paste it.
func (b *Browser) OpenLink(url string) error {
	err := b.start(url)
	if err == nil {
		return nil
	}
	logging.Debug("browser open failed, copying link", "url", url, "error", err)

	if copyErr := b.copy(url); copyErr != nil {
		return fmt.Errorf("open %s: %w (clipboard: %v)", url, err, copyErr)
	}
	return ErrLinkCopied
}

// openerCommand returns the command that opens a URL on goos.
func openerCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func startOpener(url string) error {
	name, args := openerCommand(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The opener hands off to the browser and exits; reap it in the background
	go func() { _ = cmd.Wait() }()
	return nil
}
