package ports

// ClientIDStore persists the client id of an installation.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ClientIDStore interface {
	// ClientID returns the id stored under root, creating and persisting a new one if none exists.
	ClientID(root string) (string, error)
}
