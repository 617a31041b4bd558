package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildListByOwnerQuery_SQLContainsParts(t *testing.T) {
	ownerID := int64(42)

	query, args, err := buildListByOwnerQuery(ownerID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, ownerID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from document_share_tokens")
	require.Contains(t, q, "where")
	require.Contains(t, q, "owner_id")
	require.Contains(t, q, "order by created_at desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// lifecycle columns must be selected so the owner sees revoked and
	// expired grants
	require.Contains(t, q, "revoked_at")
	require.Contains(t, q, "expires_at")

	// no lifecycle filtering on the owner view
	require.NotContains(t, q, "revoked_at is null")
}

func Test_buildListReceivedQuery_NoLifecycleFilter(t *testing.T) {
	query, args, err := buildListReceivedQuery([]string{"tp-1", "tp-2"})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// joins for document metadata and owner display name
	require.Contains(t, q, "join documents d on d.id = st.document_id")
	require.Contains(t, q, "join users u on u.user_id = st.owner_id")

	// lifecycle columns are selected but never filtered: the recipient's
	// listing keeps revoked and expired grants, only retrieval rejects them
	require.Contains(t, q, "st.revoked_at")
	require.Contains(t, q, "st.expires_at")
	require.NotContains(t, q, "revoked_at is null")
	require.NotContains(t, q, "expires_at >")

	// only the trusted person ids are bound
	require.Len(t, args, 2)
	require.Equal(t, "tp-1", args[0])
	require.Equal(t, "tp-2", args[1])

	// placeholder format should be Postgres-style
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}
