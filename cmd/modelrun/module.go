package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/sessions"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
}
