package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, auth_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, auth_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, auth_hash, name, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, auth_hash, name, created_at
    FROM users
    WHERE user_id = $1;`

	saveVaultKeys = `INSERT INTO user_vault_keys (user_id, kdf_salt, kdf_params, wrapped_mk, wrapped_mk_recovery, recovery_key_salt, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, NOW())
    ON CONFLICT (user_id) DO UPDATE SET
        kdf_salt = EXCLUDED.kdf_salt,
        kdf_params = EXCLUDED.kdf_params,
        wrapped_mk = EXCLUDED.wrapped_mk,
        wrapped_mk_recovery = EXCLUDED.wrapped_mk_recovery,
        recovery_key_salt = EXCLUDED.recovery_key_salt,
        updated_at = NOW();`

	getVaultKeys = `SELECT user_id, kdf_salt, kdf_params, wrapped_mk, wrapped_mk_recovery, recovery_key_salt, updated_at
    FROM user_vault_keys
    WHERE user_id = $1;`

	getOwnedDocument = `SELECT id, owner_id, title, category, file_name, file_path, wrapped_dek, created_at
    FROM documents
    WHERE id = $1 AND owner_id = $2;`

	getDocumentByID = `SELECT id, owner_id, title, category, file_name, file_path, wrapped_dek, created_at
    FROM documents
    WHERE id = $1;`

	getOwnedTrustedPerson = `SELECT id, owner_id, name, invitation_status, is_active, linked_user_id, created_at
    FROM trusted_persons
    WHERE id = $1 AND owner_id = $2;`

	listTrustedPersonsLinkedTo = `SELECT id, owner_id, name, invitation_status, is_active, linked_user_id, created_at
    FROM trusted_persons
    WHERE linked_user_id = $1;`

	// upsertShareToken replaces any previous grant for the same
	// (document, recipient) pair: revoked_at is cleared so a revoked share
	// can be re-issued, and expires_at/permission take the new values.
	upsertShareToken = `INSERT INTO document_share_tokens
    (id, document_id, owner_id, trusted_person_id, wrapped_dek_for_tp, permission, expires_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (document_id, trusted_person_id) DO UPDATE SET
        wrapped_dek_for_tp = EXCLUDED.wrapped_dek_for_tp,
        permission = EXCLUDED.permission,
        expires_at = EXCLUDED.expires_at,
        revoked_at = NULL,
        created_at = NOW()
    RETURNING id, document_id, owner_id, trusted_person_id, wrapped_dek_for_tp, permission, expires_at, revoked_at, created_at;`

	getShareTokenByID = `SELECT id, document_id, owner_id, trusted_person_id, wrapped_dek_for_tp, permission, expires_at, revoked_at, created_at
    FROM document_share_tokens
    WHERE id = $1;`

	// revokeShareToken touches only live tokens; revoking an already
	// revoked token affects zero rows and keeps the original timestamp.
	revokeShareToken = `UPDATE document_share_tokens
    SET revoked_at = $3
    WHERE id = $1 AND owner_id = $2 AND revoked_at IS NULL;`
)

// buildListByOwnerQuery builds the owner-facing listing query. All tokens are
// returned regardless of lifecycle state; the owner's view includes revoked
// and expired grants.
func buildListByOwnerQuery(ownerID int64) (string, []any, error) {
	return sq.Select(
		"id", "document_id", "owner_id", "trusted_person_id",
		"wrapped_dek_for_tp", "permission", "expires_at", "revoked_at", "created_at",
	).
		From("document_share_tokens").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildListReceivedQuery builds the recipient-facing listing query: every
// token targeting any of the caller's trusted person records, joined with
// document metadata and the granting owner's display name. Lifecycle state
// is not filtered here; revoked and expired grants stay visible in the
// listing and are rejected only on the file retrieval path.
func buildListReceivedQuery(trustedPersonIDs []string) (string, []any, error) {
	return sq.Select(
		"st.id", "st.document_id", "st.owner_id", "st.trusted_person_id",
		"st.wrapped_dek_for_tp", "st.permission", "st.expires_at", "st.revoked_at", "st.created_at",
		"d.id", "d.title", "d.category", "d.file_name",
		"u.name",
	).
		From("document_share_tokens st").
		Join("documents d ON d.id = st.document_id").
		Join("users u ON u.user_id = st.owner_id").
		Where(sq.Eq{"st.trusted_person_id": trustedPersonIDs}).
		OrderBy("st.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
