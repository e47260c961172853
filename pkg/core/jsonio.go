package core

import (
	"encoding/json"
	"io"
)

// MarshalResult pretty-prints a scan result as a JSON array of matches.
func MarshalResult(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// UnmarshalMatches decodes the output of MarshalResult.
func UnmarshalMatches(r io.Reader) ([]Match, error) {
	var ms []Match
	if err := json.NewDecoder(r).Decode(&ms); err != nil {
		return nil, err
	}
	return ms, nil
}
