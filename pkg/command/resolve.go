// Package command composes the shell command line for a process kind.
package command

import (
	"strings"

	"github.com/core-tools/hsu-launcher/pkg/launchconfig"
	"github.com/core-tools/hsu-launcher/pkg/processkind"
)

// condaProfileScript is sourced from under the bootstrap path
const condaProfileScript = "etc/profile.d/conda.sh"

// Resolve returns the command to run for kind, prefixed with the working
// directory change and the bootstrap clause when those are configured.
// Empty optional fields are treated as absent.
func Resolve(kind processkind.ProcessKind, commands launchconfig.Commands, app launchconfig.AppConfig) string {
	resolved := commands.Command(kind)

	if dir := strings.TrimSpace(commands.WorkingDirectory); dir != "" {
		resolved = "cd " + dir + " && " + resolved
	}

	return BootstrapClause(app.CondaPath) + resolved
}

// BootstrapClause returns "source <path>/etc/profile.d/conda.sh && ", or "" for an empty path
func BootstrapClause(bootstrapPath string) string {
	bootstrapPath = strings.TrimSpace(bootstrapPath)
	if bootstrapPath == "" {
		return ""
	}
	return "source " + strings.TrimRight(bootstrapPath, "/") + "/" + condaProfileScript + " && "
}
