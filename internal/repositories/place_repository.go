package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

type PlaceRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

const placeColumns = `id, title, description, price, latitude, longitude, owner_id, created_at, updated_at`

func scanPlace(row rowScanner) (models.Place, error) {
	var (
		p                  models.Place
		lat, lon           sql.NullFloat64
		createdAt, updated int64
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &lat, &lon, &p.OwnerID, &createdAt, &updated)
	if err != nil {
		return models.Place{}, err
	}
	p.Latitude = nullFloat64ToPtr(lat)
	p.Longitude = nullFloat64ToPtr(lon)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}

func nullFloat64ToPtr(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		val := nf.Float64
		return &val
	}
	return nil
}

func ptrToNullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func (r *PlaceRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	stamp(&place.ID, &place.CreatedAt, &place.UpdatedAt)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Place{}, err
	}
	defer tx.Rollback()

	query := `INSERT INTO places (` + placeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, r.Dialect.Rebind(query),
		place.ID, place.Title, place.Description, place.Price,
		ptrToNullFloat64(place.Latitude), ptrToNullFloat64(place.Longitude),
		place.OwnerID, toMillis(place.CreatedAt), toMillis(place.UpdatedAt),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Place{}, models.ErrOwnerNotFound
		}
		return models.Place{}, err
	}
	if err := r.insertAmenityLinks(ctx, tx, place.ID, place.AmenityIDs); err != nil {
		return models.Place{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Place{}, err
	}
	place.AmenityIDs = append([]string(nil), place.AmenityIDs...)
	return place, nil
}

func (r *PlaceRepository) insertAmenityLinks(ctx context.Context, tx *sql.Tx, placeID string, amenityIDs []string) error {
	// a failed insert aborts a postgres transaction; skip repeats here.
	seen := make(map[string]struct{}, len(amenityIDs))
	for _, amenityID := range amenityIDs {
		if _, dup := seen[amenityID]; dup {
			continue
		}
		seen[amenityID] = struct{}{}
		_, err := tx.ExecContext(ctx,
			r.Dialect.Rebind(`INSERT INTO place_amenity (place_id, amenity_id) VALUES (?, ?)`),
			placeID, amenityID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", models.ErrAmenityNotFound, amenityID)
			}
			return err
		}
	}
	return nil
}

func (r *PlaceRepository) GetPlaceByID(ctx context.Context, id string) (models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = ?`
	place, err := scanPlace(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, models.ErrPlaceNotFound
	}
	if err != nil {
		return models.Place{}, err
	}
	links, err := r.amenityLinks(ctx, `SELECT place_id, amenity_id FROM place_amenity WHERE place_id = ?`, id)
	if err != nil {
		return models.Place{}, err
	}
	place.AmenityIDs = links[place.ID]
	return place, nil
}

func (r *PlaceRepository) GetAllPlaces(ctx context.Context) ([]models.Place, error) {
	places, err := r.list(ctx, `SELECT `+placeColumns+` FROM places ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	links, err := r.amenityLinks(ctx, `SELECT place_id, amenity_id FROM place_amenity`)
	if err != nil {
		return nil, err
	}
	return attachLinks(places, links), nil
}

func (r *PlaceRepository) GetPlacesByOwner(ctx context.Context, ownerID string) ([]models.Place, error) {
	places, err := r.list(ctx, `SELECT `+placeColumns+` FROM places WHERE owner_id = ? ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	links, err := r.amenityLinks(ctx, `
		SELECT pa.place_id, pa.amenity_id
		FROM place_amenity pa
		JOIN places p ON p.id = pa.place_id
		WHERE p.owner_id = ?`, ownerID)
	if err != nil {
		return nil, err
	}
	return attachLinks(places, links), nil
}

func attachLinks(places []models.Place, links map[string][]string) []models.Place {
	for i := range places {
		places[i].AmenityIDs = links[places[i].ID]
	}
	return places
}

func (r *PlaceRepository) list(ctx context.Context, query string, args ...any) ([]models.Place, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}
	return places, rows.Err()
}

// amenityLinks loads place_amenity rows grouped by place id.
func (r *PlaceRepository) amenityLinks(ctx context.Context, query string, args ...any) (map[string][]string, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query+` ORDER BY amenity_id`), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var placeID, amenityID string
		if err := rows.Scan(&placeID, &amenityID); err != nil {
			return nil, err
		}
		links[placeID] = append(links[placeID], amenityID)
	}
	return links, rows.Err()
}

func (r *PlaceRepository) UpdatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Place{}, err
	}
	defer tx.Rollback()

	query := `
		UPDATE places
		SET title = ?, description = ?, price = ?, latitude = ?, longitude = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := tx.ExecContext(ctx, r.Dialect.Rebind(query),
		place.Title, place.Description, place.Price,
		ptrToNullFloat64(place.Latitude), ptrToNullFloat64(place.Longitude),
		toMillis(now()), place.ID,
	)
	if err != nil {
		return models.Place{}, err
	}
	if n, err := result.RowsAffected(); err != nil {
		return models.Place{}, err
	} else if n == 0 {
		return models.Place{}, models.ErrPlaceNotFound
	}

	if _, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM place_amenity WHERE place_id = ?`), place.ID); err != nil {
		return models.Place{}, err
	}
	if err := r.insertAmenityLinks(ctx, tx, place.ID, place.AmenityIDs); err != nil {
		return models.Place{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Place{}, err
	}
	return r.GetPlaceByID(ctx, place.ID)
}

// DeletePlace removes the place with its reviews and amenity links.
func (r *PlaceRepository) DeletePlace(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM reviews WHERE place_id = ?`,
		`DELETE FROM place_amenity WHERE place_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, r.Dialect.Rebind(query), id); err != nil {
			return err
		}
	}
	result, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM places WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return models.ErrPlaceNotFound
	}
	return tx.Commit()
}

func (r *PlaceRepository) RemoveAmenity(ctx context.Context, amenityID string) error {
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM place_amenity WHERE amenity_id = ?`), amenityID)
	return err
}
