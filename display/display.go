package display

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/shlex"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
)

const logPrefix = "display"

var ErrMapNotCreated = fmt.Errorf("desired map has not yet been created")

// Opener - interface to show a rendered map
type Opener interface {
	Open(file string) error
}

type opener struct {
	command []string
	open    func(u string) error
}

// Open shows file in the configured browser command, or the system default.
func (o opener) Open(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMapNotCreated, abs)
		}
		return err
	}

	u := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	log.WithFields(log.Fields{"prefix": logPrefix, "url": u}).Info("open map")

	return o.open(u)
}

func (o opener) runCommand(u string) error {
	args := append(append([]string{}, o.command[1:]...), u)
	cmd := exec.Command(o.command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}

// New - new opener. An empty command uses the system default browser,
// otherwise the command line is split shell style and the url appended.
func New(command string) (Opener, error) {
	o := &opener{open: browser.OpenURL}
	if command == "" {
		return o, nil
	}

	parts, err := shlex.Split(command)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return o, nil
	}

	o.command = parts
	o.open = o.runCommand
	return o, nil
}
