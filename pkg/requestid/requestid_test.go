// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestid_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/pkg/requestid"
)

func TestNew_IsVersion7(t *testing.T) {
	id, err := uuid.Parse(requestid.New())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNormalize(t *testing.T) {
	const clientID = "0191f0c2-7b1e-7cc3-9d62-5a1f0e3c2b10"

	assert.Equal(t, clientID, requestid.Normalize(clientID))

	for _, candidate := range []string{"", "<script>", "not-a-request-id"} {
		replaced := requestid.Normalize(candidate)
		assert.NotEqual(t, candidate, replaced)
		assert.NoError(t, uuid.Validate(replaced))
	}
}
