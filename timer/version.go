package timer

import (
	"github.com/spikeekips/itimer/util"
)

// Version is the interface version of this library. Being a constant, it is
// compiled into the caller; compare it against SourceVersion() to detect a
// caller built against a different interface than the linked implementation.
const Version = "v1.0.0"

var sourceVersion = util.MustNewVersion("v1.0.0")

// SourceVersion returns the version of the linked implementation.
func SourceVersion() util.Version {
	return sourceVersion
}
