// internal/types/types.go
package types

// EntityID — идентификатор сущности. Выдаётся по возрастанию и никогда не
// переиспользуется, поэтому устаревший ID просто не найдётся в хранилище.
type EntityID uint64

// NoEntity — отсутствие ссылки на сущность.
const NoEntity EntityID = 0
