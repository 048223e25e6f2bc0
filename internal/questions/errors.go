package questions

import "errors"

var (
	errEmptyGeneration      = errors.New("generation returned an empty question list")
	errIncompleteGeneration = errors.New("generation returned an entry without question or technology")
)
