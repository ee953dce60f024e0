/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package coreutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONUnmarshal(t *testing.T) {
	require := require.New(t)
	j := `{"int":1,"float":1.1}`
	res := map[string]interface{}{}
	require.NoError(JSONUnmarshal([]byte(j), &res))
	require.IsType(json.Number(""), res["int"])
	require.IsType(json.Number(""), res["float"])
}

func TestJSONUnmarshalErrors(t *testing.T) {
	require := require.New(t)
	res := map[string]interface{}{}
	require.Error(JSONUnmarshal([]byte(`{"broken":`), &res))
}
