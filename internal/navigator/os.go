package navigator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoOpener is returned when the platform has no known URL opener.
var ErrNoOpener = errors.New("no url opener available")

// Runner starts an external command without waiting for it to exit.
type Runner func(name string, args ...string) error

// OSBrowser navigates from a terminal. Assign hands the URL to the desktop
// opener (xdg-open, open or the Windows URL handler), Open uses the command
// in $BROWSER and Display prints the URL.
type OSBrowser struct {
	// Out receives displayed URLs.
	Out io.Writer
	// Run starts commands. Defaults to starting the process detached.
	Run Runner
	// GOOS selects the opener. Defaults to runtime.GOOS.
	GOOS string
	// Getenv reads $BROWSER. Defaults to os.Getenv.
	Getenv func(string) string
}

// Ensure OSBrowser conforms to the Browser interface at compile time.
var _ Browser = (*OSBrowser)(nil)

// NewOSBrowser returns an OSBrowser printing to out.
func NewOSBrowser(out io.Writer) *OSBrowser {
	return &OSBrowser{Out: out}
}

func (b *OSBrowser) Assign(url string) error {
	name, args, err := opener(b.goos())
	if err != nil {
		return err
	}

	return b.run(name, append(args, url)...)
}

func (b *OSBrowser) Open(url string) error {
	getenv := b.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	// $BROWSER may list several commands separated by the path list separator
	var errs []error
	for _, cmd := range strings.Split(getenv("BROWSER"), string(os.PathListSeparator)) {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}
		err := b.run(fields[0], append(fields[1:], url)...)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return errors.New("BROWSER is not set")
	}

	return errors.Join(errs...)
}

func (b *OSBrowser) Display(url string) error {
	if b.Out == nil {
		return errors.New("no output to display url on")
	}
	if _, err := fmt.Fprintf(b.Out, "Open this link: %s\n", url); err != nil {
		return fmt.Errorf("could not display url: %w", err)
	}

	return nil
}

func (b *OSBrowser) goos() string {
	if b.GOOS != "" {
		return b.GOOS
	}

	return runtime.GOOS
}

func (b *OSBrowser) run(name string, args ...string) error {
	if b.Run != nil {
		return b.Run(name, args...)
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start %s: %w", name, err)
	}
	// reap the child in the background
	go func() { _ = cmd.Wait() }()

	return nil
}

func opener(goos string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil, nil
	default:
		return "", nil, fmt.Errorf("%w on %s", ErrNoOpener, goos)
	}
}
