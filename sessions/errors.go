package sessions

import "errors"

var (
	ErrNoModel = errors.New("no model selected")
	ErrNoData  = errors.New("no data loaded")
)
