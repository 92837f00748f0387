package sniff

import (
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/fuss/scanners"
)

type HitHandlerFunc func(lager.Logger, scanners.Hit) error
