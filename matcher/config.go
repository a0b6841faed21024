// Package matcher builds the OneInputMatcher/TwoInputMatcher closures §6 of
// the network spec treats as a free compiler boundary: expression-based,
// script-based, and struct-reflection-based builders that turn
// types.Configuration into the function values FeatureTester, OrdinaryMatch
// and NotNode hold.
package matcher

import (
	"github.com/mitchellh/mapstructure"

	"github.com/bittoy/rete/types"
)

// decode fills dst from a Configuration the same way the teacher's
// components decode their node configuration — via a generic
// map-to-struct pass rather than one hand-written field copy per matcher
// kind.
func decode(config types.Configuration, dst any) error {
	return mapstructure.Decode(map[string]any(config), dst)
}
