package statsdb

import "errors"

var ErrStatsNotFound = errors.New("player stats not found")
