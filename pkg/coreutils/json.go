/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package coreutils

import (
	"bytes"
	"encoding/json"
)

// JSONUnmarshal decodes b into ptrToPayload keeping numeric tokens as
// json.Number. Answer payloads must not lose precision before coercion:
// a fractional token supplied for a whole number field is an error, not
// a value to round.
func JSONUnmarshal(b []byte, ptrToPayload any) error {
	reader := bytes.NewReader(b)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	return decoder.Decode(ptrToPayload)
}
