package repositories

// RepositoryProvider bundles every repository the service layer needs.
type RepositoryProvider struct {
	UserRepo     UserRepository
	HistoryRepo  HistoryRepository
	FavoriteRepo FavoriteRepository
}
