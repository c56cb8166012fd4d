package modelconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/modelrun/configs"
	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/modes"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"modelrun.cue",
	".modelrun.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
