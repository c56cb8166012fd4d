package modelconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/modelrun/cmds"
	"github.com/reusee/modelrun/configs"
	"github.com/reusee/modelrun/vars"
)

type DataDir string

var _ configs.Configurable = DataDir("")

func (d DataDir) ConfigExpr() string {
	return "data_dir"
}

type ScriptsDir string

var _ configs.Configurable = ScriptsDir("")

func (d ScriptsDir) ConfigExpr() string {
	return "scripts_dir"
}

var (
	dataDirFlag    = cmds.Var[string]("-data-dir", "directory searched for data files")
	scriptsDirFlag = cmds.Var[string]("-scripts-dir", "directory searched for scripts")
)

func (Module) DataDir(
	loader configs.Loader,
) DataDir {
	return DataDir(vars.FirstNonZero(
		vars.DerefOrZero(dataDirFlag),
		configs.First[string](loader, "data_dir"),
		"data",
	))
}

func (Module) ScriptsDir(
	loader configs.Loader,
) ScriptsDir {
	return ScriptsDir(vars.FirstNonZero(
		vars.DerefOrZero(scriptsDirFlag),
		configs.First[string](loader, "scripts_dir"),
		"scripts",
	))
}

// Resolve returns path itself if it exists, otherwise path under dir.
func Resolve[D ~string](dir D, path string) string {
	if _, err := os.Stat(path); err == nil || filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(string(dir), path)
}
