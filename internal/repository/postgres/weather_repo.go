package postgres

import (
	"context"
	"database/sql"

	"weather-api/internal/domain/weather"
)

type WeatherLogRepo struct {
	db *sql.DB
}

func NewWeatherLogRepo(db *sql.DB) *WeatherLogRepo {
	return &WeatherLogRepo{db: db}
}

func (r *WeatherLogRepo) Insert(ctx context.Context, e *weather.LogEntry) error {
	query := `
        INSERT INTO weather_requests (email, zip_code, weather_details, requested_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.db.QueryRowContext(ctx, query,
		e.Email, e.ZipCode, e.WeatherDetails, e.Timestamp).Scan(&e.ID)
}

func (r *WeatherLogRepo) FindByZipOrEmail(ctx context.Context, zipCode, email *string) ([]weather.LogEntry, error) {
	query := `
        SELECT id, email, zip_code, weather_details, requested_at
        FROM weather_requests
    `
	var rows *sql.Rows
	var err error

	switch {
	case zipCode != nil && email != nil:
		query += " WHERE zip_code = $1 OR email = $2 ORDER BY id"
		rows, err = r.db.QueryContext(ctx, query, *zipCode, *email)
	case zipCode != nil:
		query += " WHERE zip_code = $1 ORDER BY id"
		rows, err = r.db.QueryContext(ctx, query, *zipCode)
	case email != nil:
		query += " WHERE email = $1 ORDER BY id"
		rows, err = r.db.QueryContext(ctx, query, *email)
	default:
		query += " ORDER BY id"
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []weather.LogEntry{}
	for rows.Next() {
		var e weather.LogEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.ZipCode, &e.WeatherDetails, &e.Timestamp); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
