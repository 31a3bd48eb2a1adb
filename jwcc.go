// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"bytes"
	"fmt"

	"github.com/tailscale/hujson"
)

// ParseJWCC parses text as a JSON document that may also contain comments
// and trailing commas ("JSON With Commas and Comments"), and returns the
// root of its tree. The extensions are removed without moving any other
// text, so the locations reported by a *SyntaxError refer to text as given.
//
// A malformed comment or misplaced comma is reported as an ordinary error
// with no location.
func ParseJWCC(text []byte) (*Node, error) {
	std, err := hujson.Standardize(bytes.Clone(text))
	if err != nil {
		return nil, fmt.Errorf("standardize input: %w", err)
	}
	return Parse(std)
}
