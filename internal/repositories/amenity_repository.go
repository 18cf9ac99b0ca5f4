package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

type AmenityRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

const amenityColumns = `id, name, created_at, updated_at`

func scanAmenity(row rowScanner) (models.Amenity, error) {
	var (
		a                  models.Amenity
		createdAt, updated int64
	)
	if err := row.Scan(&a.ID, &a.Name, &createdAt, &updated); err != nil {
		return models.Amenity{}, err
	}
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updated)
	return a, nil
}

func (r *AmenityRepository) CreateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error) {
	stamp(&amenity.ID, &amenity.CreatedAt, &amenity.UpdatedAt)
	query := `INSERT INTO amenities (` + amenityColumns + `) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		amenity.ID, amenity.Name, toMillis(amenity.CreatedAt), toMillis(amenity.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Amenity{}, models.ErrDuplicateAmenity
		}
		return models.Amenity{}, err
	}
	return amenity, nil
}

func (r *AmenityRepository) GetAmenityByID(ctx context.Context, id string) (models.Amenity, error) {
	query := `SELECT ` + amenityColumns + ` FROM amenities WHERE id = ?`
	amenity, err := scanAmenity(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Amenity{}, models.ErrAmenityNotFound
	}
	return amenity, err
}

func (r *AmenityRepository) GetAmenityByName(ctx context.Context, name string) (models.Amenity, error) {
	query := `SELECT ` + amenityColumns + ` FROM amenities WHERE name = ?`
	amenity, err := scanAmenity(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Amenity{}, models.ErrAmenityNotFound
	}
	return amenity, err
}

func (r *AmenityRepository) GetAllAmenities(ctx context.Context) ([]models.Amenity, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+amenityColumns+` FROM amenities ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	amenities := []models.Amenity{}
	for rows.Next() {
		a, err := scanAmenity(rows)
		if err != nil {
			return nil, err
		}
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}

func (r *AmenityRepository) UpdateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error) {
	result, err := r.DB.ExecContext(ctx,
		r.Dialect.Rebind(`UPDATE amenities SET name = ?, updated_at = ? WHERE id = ?`),
		amenity.Name, toMillis(now()), amenity.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Amenity{}, models.ErrDuplicateAmenity
		}
		return models.Amenity{}, err
	}
	if n, err := result.RowsAffected(); err != nil {
		return models.Amenity{}, err
	} else if n == 0 {
		return models.Amenity{}, models.ErrAmenityNotFound
	}
	return r.GetAmenityByID(ctx, amenity.ID)
}

// DeleteAmenity also drops the amenity from every place that lists it.
func (r *AmenityRepository) DeleteAmenity(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM place_amenity WHERE amenity_id = ?`), id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM amenities WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return models.ErrAmenityNotFound
	}
	return tx.Commit()
}
