package pgdb

import (
	"context"

	"github.com/felstore-tech/analytics-backend/internal/domain"
	"github.com/felstore-tech/analytics-backend/internal/repository/pgdb/converter"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Товары заказа агрегируются из связующей таблицы order_products.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// LoadAll возвращает все заказы с наборами id их товаров в стабильном порядке по id.
func (o *OrderRepo) LoadAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT
			ord.id, ord.order_date, ord.customer_id,
			COALESCE(
				array_agg(op.product_id ORDER BY op.product_id)
					FILTER (WHERE op.product_id IS NOT NULL),
				'{}'
			) AS product_ids
		FROM orders ord
		LEFT JOIN order_products op ON op.order_id = ord.id
		GROUP BY ord.id, ord.order_date, ord.customer_id
		ORDER BY ord.id
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.OrderModel, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(&model.ID, &model.OrderDate, &model.CustomerID, &model.ProductIDs); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}
