package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/loaders"
	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/modelconfigs"
	"github.com/reusee/modelrun/models"
	"github.com/reusee/modelrun/scripts"
)

type Module struct {
	dscope.Module
	Loaders      loaders.Module
	Models       models.Module
	Scripts      scripts.Module
	ModelConfigs modelconfigs.Module
	Logs         logs.Module
}
