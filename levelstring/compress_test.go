// Copyright (c) 2023 The SPWN-language-sub003 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package levelstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressLevelStringRoundTrip(t *testing.T) {
	plain := "1,1268,51,1,57,1.1001,108,1,;1,901,57,2,;"

	encoded, err := CompressLevelString(plain)
	require.NoError(t, err)
	assert.NotEqual(t, plain, encoded)

	decoded, err := DecompressLevelString(encoded)
	require.NoError(t, err)
	assert.Equal(t, plain, decoded)
}

func TestDecompressLevelStringRejectsGarbage(t *testing.T) {
	_, err := DecompressLevelString("not valid base64 zlib data!!")
	assert.Error(t, err)
}

func TestCompressLevelStringEmpty(t *testing.T) {
	encoded, err := CompressLevelString("")
	require.NoError(t, err)
	decoded, err := DecompressLevelString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "", decoded)
}
