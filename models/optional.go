package models

import "encoding/json"

// Optional различает три состояния поля в JSON-теле запроса:
// поле отсутствует (Set == false), передан явный null
// (Set == true, Valid == false) и передано значение
// (Set == true, Valid == true).
type Optional[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// NewOptional возвращает присутствующее поле с заданным значением.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true, Valid: true}
}

// NullOptional возвращает присутствующее поле с явным null.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON вызывается только для полей, присутствующих в теле,
// отсутствующее поле остаётся в нулевом состоянии (Set == false).
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr возвращает значение в виде указателя: nil при явном null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
