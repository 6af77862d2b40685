//go:build !audio

package main

import "errors"

func newChime() (func(), func(), error) {
	return nil, nil, errors.New("audio unavailable in this build; rebuild with -tags audio")
}
