package worker

import (
	"context"
)

// Worker интерфейс для всех фоновых задач
type Worker interface {
	// Start запускает воркер и блокируется до остановки
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}

// Task - одна итерация периодической задачи
type Task func(ctx context.Context) error
