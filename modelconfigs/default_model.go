package modelconfigs

import (
	"github.com/reusee/modelrun/cmds"
	"github.com/reusee/modelrun/configs"
	"github.com/reusee/modelrun/vars"
)

// DefaultModel is selected when a session starts. Empty means none.
type DefaultModel string

var _ configs.Configurable = DefaultModel("")

func (d DefaultModel) ConfigExpr() string {
	return "model"
}

var modelFlag = cmds.Var[string]("-model", "model selected at start")

func (Module) DefaultModel(
	loader configs.Loader,
) DefaultModel {
	return DefaultModel(vars.FirstNonZero(
		*modelFlag,
		configs.First[string](loader, "model"),
	))
}
