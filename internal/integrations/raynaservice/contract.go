package raynaservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver принимает длительность и исход каждого вызова поставщика
type MetricsObserver interface {
	ObserveVendor(path, outcome string, seconds float64)
}
