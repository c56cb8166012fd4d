package modelconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/configs"
	"github.com/reusee/modelrun/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
