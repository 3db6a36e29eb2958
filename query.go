package moneymanager

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates the JSONPath expression path against the persisted form of
// users, e.g. "$.users[*].name".
//
// Numbers are returned as float64, it is meant for scripting, not for
// accounting.
func Query(users []User, path string) (any, error) {
	data, err := Marshal(users)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
