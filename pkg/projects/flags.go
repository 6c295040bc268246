package projects

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// Flags defines CLI flags to configure the project registry. These flags can
// also be set using environment variables and the application's configuration
// file.
func Flags(configFilePath altsrc.StringSourcer) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "projects-config",
			Usage: "path to a TOML file with project and maintainer info (built-in defaults when unset)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("REPOROVER_PROJECTS"),
				toml.TOML("projects.path", configFilePath),
			),
		},
	}
}
