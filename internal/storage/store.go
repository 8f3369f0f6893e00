// ABOUTME: Generic document-table operations: list, upsert, delete, clear.
// ABOUTME: Typed entity helpers elsewhere in the package build on these.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches an id or prefix.
var ErrNotFound = errors.New("record not found")

// ErrAmbiguous is returned when an id prefix matches more than one record.
var ErrAmbiguous = errors.New("ambiguous id prefix")

func validTable(table string) error {
	for _, t := range Tables {
		if t == table {
			return nil
		}
	}
	return fmt.Errorf("unknown table %q", table)
}

// List returns all records in a table for one user, decoded from their JSON
// documents. Records that fail to decode are skipped rather than failing the
// whole read; a single corrupt row must not take the dataset offline.
func List[T any](d *DB, table, userID string) ([]*T, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(
		fmt.Sprintf(`SELECT data FROM %s WHERE user_id = ?`, table), userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		var v T
		if err := json.Unmarshal([]byte(data), &v); err != nil {
			continue
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Get returns one record by exact id.
func Get[T any](d *DB, table, id string) (*T, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}

	var data string
	err := d.db.QueryRow(
		fmt.Sprintf(`SELECT data FROM %s WHERE id = ?`, table), id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", table, err)
	}

	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("decode %s record %s: %w", table, id, err)
	}
	return &v, nil
}

// Put upserts one record (create-or-replace by primary key id).
func Put[T any](d *DB, table, id, userID string, v *T) error {
	if err := validTable(table); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", table, err)
	}

	_, err = d.db.Exec(fmt.Sprintf(`
		INSERT INTO %s (id, user_id, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`, table),
		id, userID, string(data))
	if err != nil {
		return fmt.Errorf("save %s record %s: %w", table, id, err)
	}
	return nil
}

// Delete removes one record by id. Deleting an absent id is not an error.
func (d *DB) Delete(table, id string) error {
	if err := validTable(table); err != nil {
		return err
	}
	if _, err := d.db.Exec(
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id); err != nil {
		return fmt.Errorf("delete %s record %s: %w", table, id, err)
	}
	return nil
}

// Clear removes every record in a table.
func (d *DB) Clear(table string) error {
	if err := validTable(table); err != nil {
		return err
	}
	if _, err := d.db.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return nil
}

// ResolveID expands an id prefix to the full id it uniquely identifies.
func (d *DB) ResolveID(table, idOrPrefix string) (string, error) {
	if err := validTable(table); err != nil {
		return "", err
	}

	rows, err := d.db.Query(
		fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? LIMIT 2`, table),
		idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("resolve id in %s: %w", table, err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
	}
}
