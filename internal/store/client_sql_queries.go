package store

const (
	deleteCachedShares = `
		DELETE FROM received_shares
		WHERE user_id = $1;`

	saveCachedShare = `
		INSERT INTO received_shares (
			token_id,
			user_id,
			document_id,
			owner_id,
			owner_name,
			trusted_person_id,
			wrapped_dek_for_tp,
			permission,
			expires_at,
			created_at,
			title,
			category,
			file_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	getCachedShares = `
		SELECT
			token_id,
			document_id,
			owner_id,
			owner_name,
			trusted_person_id,
			wrapped_dek_for_tp,
			permission,
			expires_at,
			created_at,
			title,
			category,
			file_name
		FROM received_shares
		WHERE user_id = $1
		ORDER BY created_at DESC;`
)
