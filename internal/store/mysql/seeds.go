package mysql

import (
	"context"

	"go.uber.org/zap"
	"mockgraph/internal/model"
)

func (s *Store) Cars(ctx context.Context, table string) ([]model.Car, error) {
	query, err := selectFrom(table, "id, make, model, year, color, price")
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.log.Error("sql select cars failed", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Car
	for rows.Next() {
		var car model.Car
		if err := rows.Scan(&car.ID, &car.Make, &car.Model, &car.Year, &car.Color, &car.Price); err != nil {
			s.log.Error("sql scan car failed", zap.String("table", table), zap.Error(err))
			return nil, err
		}
		result = append(result, car)
	}
	return result, rows.Err()
}

func (s *Store) Users(ctx context.Context, table string) ([]model.User, error) {
	query, err := selectFrom(table, "id, first_name, last_name, email, password")
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.log.Error("sql select users failed", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password); err != nil {
			s.log.Error("sql scan user failed", zap.String("table", table), zap.Error(err))
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
