package recapdb

import "errors"

var ErrRecapNotFound = errors.New("round recap not found")
