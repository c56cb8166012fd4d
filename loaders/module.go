package loaders

import (
	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
