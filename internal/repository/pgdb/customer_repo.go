package pgdb

import (
	"context"

	"github.com/felstore-tech/analytics-backend/internal/domain"
	"github.com/felstore-tech/analytics-backend/internal/repository/pgdb/converter"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
// Только чтение: идентификаторы назначает БД при наполнении.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{
		pool: pool,
		conv: conv,
	}
}

// LoadAll возвращает всех покупателей в стабильном порядке по id.
func (c *CustomerRepo) LoadAll(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, tier
		FROM customers
		ORDER BY id
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CustomerModel, 0)
	for rows.Next() {
		var model converter.CustomerModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Tier); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}
