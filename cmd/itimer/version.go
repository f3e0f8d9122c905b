package main

import (
	"os"

	"github.com/spikeekips/itimer/timer"
	"github.com/spikeekips/itimer/util"
)

type versionCommand struct{}

func (cmd *versionCommand) Run() error {
	// interface and source version diverge when the caller was built against
	// another release of the library than the one linked in
	_, _ = os.Stdout.WriteString(util.MustMarshalJSONIndentString(map[string]string{
		"interface": timer.Version,
		"source":    timer.SourceVersion().String(),
	}) + "\n")

	return nil
}
