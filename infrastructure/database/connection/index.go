package connection

import (
	"blinkgate.io/infrastructure/database/connection/cache"
	"blinkgate.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
