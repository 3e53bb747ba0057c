package model

// StoreType classifies a retail location.
type StoreType string

const (
	StoreFlagship StoreType = "flagship"
	StoreStandard StoreType = "standard"
	StoreMall     StoreType = "mall"
	StoreExpress  StoreType = "express"
)

// Store is a fixed physical retail location. The catalog is static fixture
// data, created once and never mutated.
type Store struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Region string    `json:"region"`
	Type   StoreType `json:"type"`
}
