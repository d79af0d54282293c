package e

import "fmt"

var (
	// Ошибки аналитических запросов
	ErrNoProductInCategory = fmt.Errorf("no product found in category")

	// Ошибки кэша отчётов
	ErrReportNotCached = fmt.Errorf("report not found in cache")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
