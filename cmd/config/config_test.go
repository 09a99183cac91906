// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fetch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		wantErr  bool
		contains string
	}{
		{
			name:     "local file",
			src:      "./testdata/store.adhocconfig",
			contains: "[build]",
		},
		{
			name:    "unreachable getter url",
			src:     "git::http://notexist//store",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := fetch(context.Background(), tc.src)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)
			assert.Contains(t, string(data), tc.contains)
		})
	}
}
