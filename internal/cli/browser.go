package cli

import (
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"
)

// openInBrowser hands a URL to the platform's URL opener. Failures only
// log: the URL was already printed and the command's outcome does not
// depend on a browser being available.
func openInBrowser(logger *log.Logger, url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logger.Debug("open browser failed", "url", url, "err", err)
	}
}
