package modelconfigs

import "github.com/reusee/modelrun/configs"

// Settings lists the effective value of every setting.
type Settings []configs.Configurable

func (Module) Settings(
	delimiter Delimiter,
	dataDir DataDir,
	scriptsDir ScriptsDir,
	defaultModel DefaultModel,
) Settings {
	return Settings{
		delimiter,
		dataDir,
		scriptsDir,
		defaultModel,
	}
}
