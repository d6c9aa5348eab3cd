package model

// ItemCreator is an interface for data that can convert itself to a STAC item
type ItemCreator interface {
	StacItem() (*Item, error)
}

// ItemMixin is an interface for data that can be used to augment an existing STAC item
type ItemMixin interface {
	Apply(*Item) error
}
